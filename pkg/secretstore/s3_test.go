package secretstore_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otpserver/pkg/secretstore"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func newS3Backend(t *testing.T, client secretstore.S3Client) *secretstore.S3Backend {
	t.Helper()
	backend, err := secretstore.NewS3Backend(context.Background(),
		secretstore.S3Config{Bucket: "secrets"}, "otpserver", secretstore.WithS3Client(client))
	require.NoError(t, err)
	return backend
}

func objectInput(params *s3.GetObjectInput) bool {
	return aws.ToString(params.Bucket) == "secrets" && aws.ToString(params.Key) == "otpserver"
}

func TestNewS3Backend(t *testing.T) {
	t.Parallel()

	t.Run("requires bucket", func(t *testing.T) {
		t.Parallel()
		_, err := secretstore.NewS3Backend(context.Background(), secretstore.S3Config{Region: "us-east-1"}, "otpserver")
		assert.ErrorIs(t, err, secretstore.ErrInvalidConfig)
	})

	t.Run("requires region without client", func(t *testing.T) {
		t.Parallel()
		_, err := secretstore.NewS3Backend(context.Background(), secretstore.S3Config{Bucket: "secrets"}, "otpserver")
		assert.ErrorIs(t, err, secretstore.ErrInvalidConfig)
	})

	t.Run("builds sdk client", func(t *testing.T) {
		t.Parallel()
		backend, err := secretstore.NewS3Backend(context.Background(), secretstore.S3Config{
			Bucket:         "secrets",
			Region:         "us-east-1",
			AccessKeyID:    "test-key",
			SecretKey:      "test-secret",
			Endpoint:       "http://localhost:9000",
			ForcePathStyle: true,
		}, "otpserver")
		require.NoError(t, err)
		assert.Equal(t, "s3", backend.Name())
	})

	t.Run("configured key wins", func(t *testing.T) {
		t.Parallel()
		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.MatchedBy(func(p *s3.GetObjectInput) bool {
			return aws.ToString(p.Key) == "custom/key"
		}), mock.Anything).Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(rfcSecretText)))}, nil)

		backend, err := secretstore.NewS3Backend(context.Background(),
			secretstore.S3Config{Bucket: "secrets", Key: "custom/key"}, "otpserver", secretstore.WithS3Client(client))
		require.NoError(t, err)
		_, err = backend.Read(context.Background())
		require.NoError(t, err)
		client.AssertExpectations(t)
	})
}

func TestS3Backend(t *testing.T) {
	t.Parallel()

	t.Run("read", func(t *testing.T) {
		t.Parallel()
		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.MatchedBy(objectInput), mock.Anything).
			Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(rfcSecretText)))}, nil)

		data, err := newS3Backend(t, client).Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rfcSecretText, string(data))
		client.AssertExpectations(t)
	})

	notFound := []struct {
		name string
		err  error
	}{
		{name: "typed NoSuchKey", err: &types.NoSuchKey{}},
		{name: "api NoSuchKey", err: &smithy.GenericAPIError{Code: "NoSuchKey"}},
		{name: "api NotFound", err: &smithy.GenericAPIError{Code: "NotFound"}},
	}
	for _, tt := range notFound {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := &MockS3Client{}
			client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := newS3Backend(t, client).Read(context.Background())
			assert.ErrorIs(t, err, secretstore.ErrNotFound)
			assert.NotErrorIs(t, err, secretstore.ErrStoreUnavailable)
		})
	}

	unavailable := []struct {
		name string
		err  error
	}{
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied"}},
		{name: "missing bucket", err: &types.NoSuchBucket{}},
		{name: "network", err: errors.New("dial tcp: connection refused")},
		{name: "deadline", err: context.DeadlineExceeded},
	}
	for _, tt := range unavailable {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := &MockS3Client{}
			client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := newS3Backend(t, client).Read(context.Background())
			assert.ErrorIs(t, err, secretstore.ErrStoreUnavailable)
			assert.NotErrorIs(t, err, secretstore.ErrNotFound)
		})
	}

	t.Run("write", func(t *testing.T) {
		t.Parallel()
		var put *s3.PutObjectInput
		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { put = args.Get(1).(*s3.PutObjectInput) }).
			Return(&s3.PutObjectOutput{}, nil)

		require.NoError(t, newS3Backend(t, client).Write(context.Background(), []byte(rfcSecretText)))
		client.AssertExpectations(t)

		require.NotNil(t, put)
		assert.Equal(t, "secrets", aws.ToString(put.Bucket))
		assert.Equal(t, "otpserver", aws.ToString(put.Key))
		assert.Equal(t, int64(len(rfcSecretText)), aws.ToInt64(put.ContentLength))
		body, err := io.ReadAll(put.Body)
		require.NoError(t, err)
		assert.Equal(t, rfcSecretText, string(body))
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()
		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "SlowDown"})

		err := newS3Backend(t, client).Write(context.Background(), []byte(rfcSecretText))
		assert.ErrorIs(t, err, secretstore.ErrStoreUnavailable)
	})
}
