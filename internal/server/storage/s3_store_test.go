package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3Client struct {
	objects map[string][]byte
}

func newFakeS3Client() *fakeS3Client {
	return &fakeS3Client{objects: make(map[string][]byte)}
}

func (f *fakeS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*params.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestS3Store_WriteReadRoundTrip(t *testing.T) {
	client := newFakeS3Client()
	s := &S3Store{client: client, bucket: "vault"}
	ctx := context.Background()

	key, err := s.Write(ctx, []byte("payload"))
	require.NoError(t, err)
	require.NotEmpty(t, key)

	got, err := s.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestS3Store_ReadMissingKey(t *testing.T) {
	s := &S3Store{client: newFakeS3Client(), bucket: "vault"}

	_, err := s.Read(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
