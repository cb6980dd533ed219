// Package blob uploads produced files to S3 compatible object storage
package blob

import (
	"bytes"
	"context"
	"path"
	"strings"

	"articlestats/internal/platform/config"
	perr "articlestats/internal/platform/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config selects the bucket and how to reach it
// Region, credentials and profile otherwise come from the standard AWS chain
type Config struct {
	Bucket       string
	Prefix       string
	Region       string
	Profile      string
	Endpoint     string // for minio and other S3 compatible stores
	UsePathStyle bool
}

// Enabled reports whether a bucket is configured
func (c Config) Enabled() bool { return c.Bucket != "" }

// ConfigFromEnv reads SERVICE_S3_*
func ConfigFromEnv(root config.Conf) Config {
	c := root.Prefix("SERVICE_S3_")
	return Config{
		Bucket:       c.MayString("BUCKET", ""),
		Prefix:       strings.Trim(c.MayString("PREFIX", "articlestats"), "/"),
		Region:       c.MayString("REGION", ""),
		Profile:      c.MayString("PROFILE", ""),
		Endpoint:     c.MayString("ENDPOINT", ""),
		UsePathStyle: c.MayBool("PATH_STYLE", false),
	}
}

// Putter is the slice of the S3 client we use
type Putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store writes objects under Config.Prefix in Config.Bucket
type Store struct {
	api Putter
	cfg Config
}

// New builds a Store from the default AWS config chain
func New(ctx context.Context, cfg Config) (*Store, error) {
	if !cfg.Enabled() {
		return nil, perr.InvalidArgf("s3 bucket not configured")
	}
	var opts []func(*awscfg.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awscfg.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awscfg.WithSharedConfigProfile(cfg.Profile))
	}
	ac, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "load aws config")
	}
	c := s3.NewFromConfig(ac, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithAPI(c, cfg), nil
}

// NewWithAPI wraps an existing client, e.g. a fake in tests
func NewWithAPI(api Putter, cfg Config) *Store { return &Store{api: api, cfg: cfg} }

// Key joins the configured prefix with parts
func (s *Store) Key(parts ...string) string {
	return strings.TrimPrefix(path.Join(append([]string{s.cfg.Prefix}, parts...)...), "/")
}

// URI returns the s3:// location of key
func (s *Store) URI(key string) string { return "s3://" + s.cfg.Bucket + "/" + key }

// Put uploads body to key and returns its s3:// location
func (s *Store) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.api.PutObject(ctx, in); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "put %s", s.URI(key))
	}
	return s.URI(key), nil
}
