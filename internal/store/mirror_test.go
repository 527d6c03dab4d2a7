package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

type fakeAzure struct {
	container, blob string
	contentType     string
	err             error
}

func (f *fakeAzure) UploadFile(_ context.Context, container, blobName string, _ *os.File, o *azblob.UploadFileOptions) (azblob.UploadFileResponse, error) {
	f.container, f.blob = container, blobName
	if o != nil && o.HTTPHeaders != nil && o.HTTPHeaders.BlobContentType != nil {
		f.contentType = *o.HTTPHeaders.BlobContentType
	}
	return azblob.UploadFileResponse{}, f.err
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.png")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewUploadMirror_None(t *testing.T) {
	mirror, err := NewUploadMirror(context.Background(), config.Mirror{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, mirror)
}

func TestNewUploadMirror_UnknownKind(t *testing.T) {
	_, err := NewUploadMirror(context.Background(), config.Mirror{Kind: "ftp"}, logger.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidMirrorConfigs)
}

func TestS3Mirror_Put(t *testing.T) {
	client := &fakeS3{}
	mirror := &s3Mirror{client: client, bucket: "pos", prefix: "media"}

	err := mirror.Put(context.Background(), "products/1-a.png", "image/png", writeTempFile(t, "img"))
	require.NoError(t, err)

	assert.Equal(t, "pos", aws.ToString(client.input.Bucket))
	assert.Equal(t, "media/products/1-a.png", aws.ToString(client.input.Key))
	assert.Equal(t, "image/png", aws.ToString(client.input.ContentType))
	assert.Equal(t, "img", string(client.body))
	assert.Equal(t, config.MirrorS3, mirror.Name())
}

func TestS3Mirror_PutErrors(t *testing.T) {
	mirror := &s3Mirror{client: &fakeS3{err: errors.New("denied")}, bucket: "pos"}

	err := mirror.Put(context.Background(), "k", "image/png", writeTempFile(t, "img"))
	assert.ErrorContains(t, err, "denied")

	err = mirror.Put(context.Background(), "k", "image/png", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "open upload")
}

func TestAzureBlobMirror_Put(t *testing.T) {
	client := &fakeAzure{}
	mirror := &azureBlobMirror{client: client, container: "uploads"}

	err := mirror.Put(context.Background(), "products/1-a.png", "image/png", writeTempFile(t, "img"))
	require.NoError(t, err)

	assert.Equal(t, "uploads", client.container)
	assert.Equal(t, "products/1-a.png", client.blob)
	assert.Equal(t, "image/png", client.contentType)
	assert.Equal(t, config.MirrorAzure, mirror.Name())
}

func TestNewAzureBlobMirror_SharedKey(t *testing.T) {
	mirror, err := NewAzureBlobMirror(config.Mirror{
		Kind:        config.MirrorAzure,
		AccountURL:  "https://posmedia.blob.core.windows.net/",
		AccountName: "posmedia",
		AccountKey:  "c2VjcmV0",
		Container:   "uploads",
	})
	require.NoError(t, err)
	assert.Equal(t, config.MirrorAzure, mirror.Name())
}
