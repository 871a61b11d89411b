package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClientRoundTrip(t *testing.T) {
	client := NewMemoryS3Client()
	ctx := context.Background()

	require.NoError(t, client.Upload(ctx, "documents", "mrv/PRJ-001/report.pdf", strings.NewReader("report body")))

	body, err := client.Download(ctx, "documents", "mrv/PRJ-001/report.pdf")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "report body", string(data))
}

func TestMemoryClientMissingObject(t *testing.T) {
	client := NewMemoryS3Client()

	_, err := client.Download(context.Background(), "documents", "nope")
	assert.Error(t, err)
}

func TestMemoryClientDelete(t *testing.T) {
	client := NewMemoryS3Client()
	ctx := context.Background()

	require.NoError(t, client.Upload(ctx, "documents", "key", strings.NewReader("x")))
	require.NoError(t, client.Delete(ctx, "documents", "key"))

	_, err := client.Download(ctx, "documents", "key")
	assert.Error(t, err)

	// Deleting a missing object is not an error
	assert.NoError(t, client.Delete(ctx, "documents", "key"))
}

func TestMemoryClientPresignedURL(t *testing.T) {
	client := NewMemoryS3Client()

	url, err := client.GetPresignedURL(context.Background(), "documents", "key", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "documents/key")
}
