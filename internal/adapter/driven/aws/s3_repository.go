package aws

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/catering-analytics-go/internal/adapter/driven/snapshot"
	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/domain/repository"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type identityGetter interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// S3RepositoryImpl lê um snapshot serializado (JSON/YAML/TOML) de um objeto S3.
type S3RepositoryImpl struct {
	bucket  string
	key     string
	profile string

	cfgCache  map[string]aws.Config
	s3Client  objectGetter
	stsClient identityGetter
	accountID string
	mu        sync.Mutex
	now       func() time.Time
}

// ParseS3URL separa s3://bucket/key em bucket e key.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URL %q: %w", raw, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("%w: %q is not an s3:// URL", types.ErrUnsupportedSource, raw)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URL %q: expected s3://bucket/key", raw)
	}
	return u.Host, key, nil
}

// NewS3Repository cria um SnapshotRepository para s3://bucket/key.
// profile vazio usa a cadeia de credenciais padrão do SDK.
func NewS3Repository(rawURL, profile string) (repository.SnapshotRepository, error) {
	bucket, key, err := ParseS3URL(rawURL)
	if err != nil {
		return nil, err
	}
	return &S3RepositoryImpl{
		bucket:   bucket,
		key:      key,
		profile:  profile,
		cfgCache: make(map[string]aws.Config),
		now:      time.Now,
	}, nil
}

func (r *S3RepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

// clients cria os clientes na primeira chamada e valida as credenciais via STS.
func (r *S3RepositoryImpl) clients(ctx context.Context) (objectGetter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3Client == nil || r.stsClient == nil {
		cfg, err := r.getAWSConfig(ctx, r.profile)
		if err != nil {
			return nil, err
		}
		if r.s3Client == nil {
			r.s3Client = s3.NewFromConfig(cfg)
		}
		if r.stsClient == nil {
			r.stsClient = sts.NewFromConfig(cfg)
		}
	}

	if r.accountID == "" {
		output, err := r.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		if err != nil {
			return nil, fmt.Errorf("failed to verify AWS credentials: %w", err)
		}
		r.accountID = aws.ToString(output.Account)
	}

	return r.s3Client, nil
}

// Load baixa o objeto e o decodifica pelo sufixo da chave (.json, .yaml, .toml).
func (r *S3RepositoryImpl) Load(ctx context.Context) (entity.Snapshot, error) {
	client, err := r.clients(ctx)
	if err != nil {
		return entity.Snapshot{}, err
	}

	output, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get s3://%s/%s: %w", r.bucket, r.key, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to read s3://%s/%s: %w", r.bucket, r.key, err)
	}

	s, err := snapshot.Decode(data, path.Ext(r.key))
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("s3://%s/%s: %w", r.bucket, r.key, err)
	}
	s.FetchedAt = r.now()
	return s, nil
}

// Describe identifica o objeto e, após a primeira carga, a conta AWS.
func (r *S3RepositoryImpl) Describe() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := fmt.Sprintf("s3://%s/%s", r.bucket, r.key)
	if r.accountID != "" {
		d += " (account " + r.accountID + ")"
	}
	return d
}

// Close é um no-op.
func (r *S3RepositoryImpl) Close() error {
	return nil
}
