package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"kart-compare/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, path string) ([]model.Product, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path)
	}
	return nil, errors.New("not implemented")
}

// fakeObjectGetter serves a fixed object body or error.
type fakeObjectGetter struct {
	body    []byte
	err     error
	lastKey string
	bucket  string
}

func (f *fakeObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.lastKey = aws.ToString(params.Key)
	f.bucket = aws.ToString(params.Bucket)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

func TestS3Loader_Load_Success(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, SeedProducts()))

	client := &fakeObjectGetter{body: buf.Bytes()}
	loader := NewS3LoaderWithClient(client, "catalog-bucket", zerolog.Nop())

	products, err := loader.Load(context.Background(), "catalog/products.jsonl.gz")

	require.NoError(t, err)
	assert.Equal(t, SeedProducts(), products)
	assert.Equal(t, "catalog-bucket", client.bucket)
	assert.Equal(t, "catalog/products.jsonl.gz", client.lastKey)
}

func TestS3Loader_Load_GetObjectError(t *testing.T) {
	client := &fakeObjectGetter{err: errors.New("access denied")}
	loader := NewS3LoaderWithClient(client, "catalog-bucket", zerolog.Nop())

	products, err := loader.Load(context.Background(), "catalog/products.jsonl.gz")

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "access denied")
	assert.Contains(t, err.Error(), "bucket=catalog-bucket")
}

func TestS3Loader_Load_CorruptObject(t *testing.T) {
	client := &fakeObjectGetter{body: []byte("plain text")}
	loader := NewS3LoaderWithClient(client, "catalog-bucket", zerolog.Nop())

	products, err := loader.Load(context.Background(), "catalog/products.jsonl.gz")

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to create gzip reader")
}

func TestFallbackLoader_S3Success(t *testing.T) {
	ctx := context.Background()

	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			assert.Equal(t, "catalog/products.jsonl.gz", path, "S3 key should have prefix")
			return []model.Product{{ID: "S3"}}, nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "catalog/", true, zerolog.Nop())

	products, err := fallback.Load(ctx, "products.jsonl.gz")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "S3", products[0].ID)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	ctx := context.Background()

	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			return nil, errors.New("S3 connection failed")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			assert.Equal(t, "products.jsonl.gz", path, "local path should not have prefix")
			return []model.Product{{ID: "LOCAL"}}, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "catalog/", true, zerolog.Nop())

	products, err := fallback.Load(ctx, "products.jsonl.gz")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "LOCAL", products[0].ID)
}

func TestFallbackLoader_S3DisabledOrMissing(t *testing.T) {
	tests := []struct {
		name      string
		s3Loader  Loader
		s3Enabled bool
	}{
		{
			name: "S3 disabled",
			s3Loader: &mockLoader{
				loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
					t.Error("S3 loader should not be called when S3 is disabled")
					return nil, errors.New("should not be called")
				},
			},
			s3Enabled: false,
		},
		{
			name:      "S3 loader nil",
			s3Loader:  nil,
			s3Enabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileLoader := &mockLoader{
				loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
					return []model.Product{{ID: "LOCAL"}}, nil
				},
			}

			fallback := NewFallbackLoader(tt.s3Loader, fileLoader, "catalog/", tt.s3Enabled, zerolog.Nop())

			products, err := fallback.Load(context.Background(), "products.jsonl.gz")
			require.NoError(t, err)
			require.Len(t, products, 1)
			assert.Equal(t, "LOCAL", products[0].ID)
		})
	}
}

func TestFallbackLoader_BothFail(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			return nil, errors.New("S3 error")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			return nil, errors.New("file not found")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "catalog/", true, zerolog.Nop())

	products, err := fallback.Load(context.Background(), "products.jsonl.gz")
	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "file not found")
}

func TestFallbackLoader_PrefixHandling(t *testing.T) {
	tests := []struct {
		name       string
		s3Prefix   string
		path       string
		expectedS3 string
	}{
		{name: "prefix with trailing slash", s3Prefix: "catalog/", path: "p.gz", expectedS3: "catalog/p.gz"},
		{name: "prefix without trailing slash", s3Prefix: "catalog", path: "p.gz", expectedS3: "catalogp.gz"},
		{name: "empty prefix", s3Prefix: "", path: "p.gz", expectedS3: "p.gz"},
		{name: "nested prefix", s3Prefix: "data/catalog/prod/", path: "p.gz", expectedS3: "data/catalog/prod/p.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s3Loader := &mockLoader{
				loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
					assert.Equal(t, tt.expectedS3, path)
					return []model.Product{}, nil
				},
			}

			fallback := NewFallbackLoader(s3Loader, &mockLoader{}, tt.s3Prefix, true, zerolog.Nop())
			_, err := fallback.Load(context.Background(), tt.path)
			assert.NoError(t, err)
		})
	}
}
