// Package s3out implements a pkgio.Sink that publishes a finished workbook to S3
// via multipart upload, usable in place of pkgio.FileSink wherever a Workbook's
// Build accepts a Sink.
//
// Adapted from turgutahmet-kolayxlsxstream/s3sink.go's S3Sink: same buffer-then-
// upload-part-at-threshold shape, retargeted to the pkgio.Sink capability and
// renamed out of the flat teacher package.
package s3out

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/turgutahmet/xlsxstream/pkgio"
)

var _ pkgio.Sink = (*Sink)(nil)

// client is the slice of *s3.Client this package actually calls, narrowed to an
// interface so tests can substitute a stub instead of a real S3 endpoint.
type client interface {
	CreateMultipartUpload(ctx context.Context, params *s3.CreateMultipartUploadInput, optFns...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error)
	UploadPart(ctx context.Context, params *s3.UploadPartInput, optFns...func(*s3.Options)) (*s3.UploadPartOutput, error)
	CompleteMultipartUpload(ctx context.Context, params *s3.CompleteMultipartUploadInput, optFns...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error)
	AbortMultipartUpload(ctx context.Context, params *s3.AbortMultipartUploadInput, optFns...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error)
}

// Options configures the multipart upload. PartSize must be at least 5MB (S3's
// multipart minimum, except for the final part).
type Options struct {
	PartSize int64
	ACL types.ObjectCannedACL
	ContentType string
	Metadata map[string]string
	StorageClass types.StorageClass
	ServerSideEncryption types.ServerSideEncryption
	SSEKMSKeyId *string
}

// DefaultOptions returns sane multipart-upload defaults for an xlsx payload.
func DefaultOptions() Options {
	return Options{
		PartSize: 32 * 1024 * 1024,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
}

// Sink uploads to one S3 object across the lifetime of a multipart upload.
type Sink struct {
	client client
	bucket string
	key string
	ctx context.Context
	options Options

	uploadID *string
	buffer *bytes.Buffer
	partNumber int32
	completedParts []types.CompletedPart
	totalBytes int64
}

// New starts a multipart upload targeting bucket/key.
func New(ctx context.Context, c client, bucket, key string, opts *Options) (*Sink, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.PartSize < 5*1024*1024 {
		return nil, fmt.Errorf("s3out: part size must be at least 5MB")
	}

	sink := &Sink{
		client: c,
		bucket: bucket,
		key: key,
		ctx: ctx,
		options: o,
		buffer: new(bytes.Buffer),
		partNumber: 1,
	}
	if err := sink.initiate(); err != nil {
		return nil, fmt.Errorf("s3out: initiate multipart upload: %w", err)
	}
	return sink, nil
}

// Write implements io.Writer, uploading a part once the buffer crosses PartSize.
func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.buffer.Write(p)
	s.totalBytes += int64(n)
	if err != nil {
		return n, err
	}
	if s.buffer.Len() >= int(s.options.PartSize) {
		if err := s.uploadPart(); err != nil {
			return n, fmt.Errorf("s3out: upload part: %w", err)
		}
	}
	return n, nil
}

// Close flushes any buffered remainder and completes the multipart upload,
// aborting it if completion fails.
func (s *Sink) Close() error {
	if s.buffer.Len() > 0 {
		if err := s.uploadPart(); err != nil {
			return fmt.Errorf("s3out: upload final part: %w", err)
		}
	}
	if err := s.complete(); err != nil {
		_ = s.Abort()
		return fmt.Errorf("s3out: complete multipart upload: %w", err)
	}
	return nil
}

// Abort cancels the in-progress multipart upload, releasing any parts already
// stored by S3.
func (s *Sink) Abort() error {
	if s.uploadID == nil {
		return nil
	}
	_, err := s.client.AbortMultipartUpload(s.ctx, &s3.AbortMultipartUploadInput{
			Bucket: aws.String(s.bucket),
			Key: aws.String(s.key),
			UploadId: s.uploadID,
		})
	return err
}

// TotalBytes reports how many bytes have been written so far.
func (s *Sink) TotalBytes() int64 { return s.totalBytes }

func (s *Sink) initiate() error {
	input := &s3.CreateMultipartUploadInput{
		Bucket: aws.String(s.bucket),
		Key: aws.String(s.key),
		ContentType: aws.String(s.options.ContentType),
	}
	if s.options.ACL != "" {
		input.ACL = s.options.ACL
	}
	if s.options.Metadata != nil {
		input.Metadata = s.options.Metadata
	}
	if s.options.StorageClass != "" {
		input.StorageClass = s.options.StorageClass
	}
	if s.options.ServerSideEncryption != "" {
		input.ServerSideEncryption = s.options.ServerSideEncryption
	}
	if s.options.SSEKMSKeyId != nil {
		input.SSEKMSKeyId = s.options.SSEKMSKeyId
	}
	result, err := s.client.CreateMultipartUpload(s.ctx, input)
	if err != nil {
		return err
	}
	s.uploadID = result.UploadId
	return nil
}

func (s *Sink) uploadPart() error {
	if s.buffer.Len() == 0 {
		return nil
	}
	data := s.buffer.Bytes()
	result, err := s.client.UploadPart(s.ctx, &s3.UploadPartInput{
			Bucket: aws.String(s.bucket),
			Key: aws.String(s.key),
			PartNumber: aws.Int32(s.partNumber),
			UploadId: s.uploadID,
			Body: bytes.NewReader(data),
		})
	if err != nil {
		return err
	}
	s.completedParts = append(s.completedParts, types.CompletedPart{
			ETag: result.ETag,
			PartNumber: aws.Int32(s.partNumber),
		})
	s.buffer.Reset()
	s.partNumber++
	return nil
}

func (s *Sink) complete() error {
	_, err := s.client.CompleteMultipartUpload(s.ctx, &s3.CompleteMultipartUploadInput{
			Bucket: aws.String(s.bucket),
			Key: aws.String(s.key),
			UploadId: s.uploadID,
			MultipartUpload: &types.CompletedMultipartUpload{
				Parts: s.completedParts,
			},
		})
	return err
}
