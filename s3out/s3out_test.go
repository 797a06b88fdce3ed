package s3out

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	createFunc func(context.Context, *s3.CreateMultipartUploadInput,...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error)
	uploadFunc func(context.Context, *s3.UploadPartInput,...func(*s3.Options)) (*s3.UploadPartOutput, error)
	completeFunc func(context.Context, *s3.CompleteMultipartUploadInput,...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error)
	abortFunc func(context.Context, *s3.AbortMultipartUploadInput,...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error)
}

func (m *mockClient) CreateMultipartUpload(ctx context.Context, in *s3.CreateMultipartUploadInput, opts...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in, opts...)
	}
	return &s3.CreateMultipartUploadOutput{UploadId: aws.String("upload-1")}, nil
}

func (m *mockClient) UploadPart(ctx context.Context, in *s3.UploadPartInput, opts...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, in, opts...)
	}
	return &s3.UploadPartOutput{ETag: aws.String("etag")}, nil
}

func (m *mockClient) CompleteMultipartUpload(ctx context.Context, in *s3.CompleteMultipartUploadInput, opts...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, in, opts...)
	}
	return &s3.CompleteMultipartUploadOutput{}, nil
}

func (m *mockClient) AbortMultipartUpload(ctx context.Context, in *s3.AbortMultipartUploadInput, opts...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	if m.abortFunc != nil {
		return m.abortFunc(ctx, in, opts...)
	}
	return &s3.AbortMultipartUploadOutput{}, nil
}

func TestPartSizeValidation(t *testing.T) {
	cases := []struct {
		name string
		partSize int64
		wantErr bool
	}{
		{"valid 5MB", 5 * 1024 * 1024, false},
		{"valid 32MB", 32 * 1024 * 1024, false},
		{"invalid 1MB", 1 * 1024 * 1024, true},
		{"invalid zero", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
				sink, err := New(context.Background(), &mockClient{}, "bucket", "key", &Options{PartSize: tc.partSize})
				if tc.wantErr {
					require.Error(t, err)
					return
				}
				require.NoError(t, err)
				require.NoError(t, sink.Abort())
			})
	}
}

func TestCreateFailurePropagates(t *testing.T) {
	c := &mockClient{createFunc: func(context.Context, *s3.CreateMultipartUploadInput,...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
			return nil, fmt.Errorf("access denied")
		}}
	sink, err := New(context.Background(), c, "bucket", "key", nil)
	require.Error(t, err)
	require.Nil(t, sink)
}

func TestWriteTriggersPartUploadAtThreshold(t *testing.T) {
	var uploads int
	c := &mockClient{uploadFunc: func(ctx context.Context, in *s3.UploadPartInput, opts...func(*s3.Options)) (*s3.UploadPartOutput, error) {
			uploads++
			return &s3.UploadPartOutput{ETag: aws.String("etag")}, nil
		}}
	sink, err := New(context.Background(), c, "bucket", "key", &Options{PartSize: 5 * 1024 * 1024})
	require.NoError(t, err)

	_, err = sink.Write(bytes.Repeat([]byte("x"), 6*1024*1024))
	require.NoError(t, err)
	require.Equal(t, 1, uploads)
	require.NoError(t, sink.Close())
}

func TestCloseAbortsOnCompleteFailure(t *testing.T) {
	var aborted bool
	c := &mockClient{
		completeFunc: func(context.Context, *s3.CompleteMultipartUploadInput,...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
			return nil, fmt.Errorf("internal error")
		},
		abortFunc: func(context.Context, *s3.AbortMultipartUploadInput,...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
			aborted = true
			return &s3.AbortMultipartUploadOutput{}, nil
		},
	}
	sink, err := New(context.Background(), c, "bucket", "key", nil)
	require.NoError(t, err)

	err = sink.Close()
	require.Error(t, err)
	require.True(t, aborted)
}

func TestTotalBytesTracksAllWrites(t *testing.T) {
	sink, err := New(context.Background(), &mockClient{}, "bucket", "key", nil)
	require.NoError(t, err)
	defer sink.Abort()

	_, err = sink.Write([]byte("hello"))
	require.NoError(t, err)
	require.EqualValues(t, 5, sink.TotalBytes())
}
