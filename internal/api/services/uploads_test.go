package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPresigner struct {
	mock.Mock
}

func (m *mockPresigner) PresignPut(ctx context.Context, key string, expires time.Duration) (string, error) {
	args := m.Called(ctx, key, expires)
	return args.String(0), args.Error(1)
}

func (m *mockPresigner) PublicURL(key string) string {
	return "https://pub.example.dev/" + key
}

func TestStandardUploadURL(t *testing.T) {
	presigner := &mockPresigner{}
	presigner.On("PresignPut", mock.Anything, mock.AnythingOfType("string"), 15*time.Minute).
		Return("https://signed.example/put", nil)
	uploads := NewUploadService(presigner, 15*time.Minute, "uploads")

	tests := []struct {
		name    string
		key     string
		dir     string
		pattern string
	}{
		{"default dir", "a.jpg", "", `^uploads/[0-9a-f-]{36}-a\.jpg$`},
		{"custom dir", "clip.mp4", "/videos/2024/", `^videos/2024/[0-9a-f-]{36}-clip\.mp4$`},
		{"path in key", "../../etc/a.jpg", "", `^uploads/[0-9a-f-]{36}-a\.jpg$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uploads.StandardUploadURL(context.Background(), tt.key, tt.dir)
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), got.Key)
			assert.Equal(t, "https://signed.example/put", got.PresignedURL)
			assert.Equal(t, "https://pub.example.dev/"+got.Key, got.FileURL)
		})
	}

	first, err := uploads.StandardUploadURL(context.Background(), "a.jpg", "")
	require.NoError(t, err)
	second, err := uploads.StandardUploadURL(context.Background(), "a.jpg", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.Key, second.Key)
}

func TestStandardUploadURLRejects(t *testing.T) {
	uploads := NewUploadService(&mockPresigner{}, time.Minute, "uploads")

	for _, tc := range []struct{ key, dir string }{
		{"", ""},
		{"   ", ""},
		{"dir/", ""},
		{"a.jpg", "../outside"},
		{"a.jpg", ".."},
	} {
		_, err := uploads.StandardUploadURL(context.Background(), tc.key, tc.dir)
		assert.ErrorIs(t, err, ErrBadRequest, "key=%q dir=%q", tc.key, tc.dir)
	}
}

func TestStandardUploadURLSigningFailure(t *testing.T) {
	presigner := &mockPresigner{}
	presigner.On("PresignPut", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("boom"))
	uploads := NewUploadService(presigner, time.Minute, "uploads")

	_, err := uploads.StandardUploadURL(context.Background(), "a.jpg", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadRequest)
	assert.NotErrorIs(t, err, ErrNotFound)
	presigner.AssertExpectations(t)
}
