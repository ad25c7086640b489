package aws

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

type fakeS3 struct {
	body   string
	err    error
	gotKey string
	gotBkt string
	calls  int
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.calls++
	f.gotBkt = aws.ToString(in.Bucket)
	f.gotKey = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

type fakeSTS struct {
	account string
	err     error
	calls   int
}

func (f *fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{Account: aws.String(f.account)}, nil
}

func newTestRepo(t *testing.T, rawURL string, s3c *fakeS3, stsc *fakeSTS) *S3RepositoryImpl {
	t.Helper()
	repo, err := NewS3Repository(rawURL, "")
	if err != nil {
		t.Fatalf("NewS3Repository() error = %v", err)
	}
	impl := repo.(*S3RepositoryImpl)
	impl.s3Client = s3c
	impl.stsClient = stsc
	impl.now = func() time.Time { return time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC) }
	return impl
}

func TestParseS3URL(t *testing.T) {
	tests := []struct {
		raw        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{raw: "s3://finance-exports/catering/snapshot.json", wantBucket: "finance-exports", wantKey: "catering/snapshot.json"},
		{raw: "s3://bucket/a.yaml", wantBucket: "bucket", wantKey: "a.yaml"},
		{raw: "s3://bucket", wantErr: true},
		{raw: "s3:///key.json", wantErr: true},
		{raw: "https://bucket/key.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			bucket, key, err := ParseS3URL(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseS3URL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if bucket != tt.wantBucket || key != tt.wantKey {
				t.Errorf("ParseS3URL(%q) = (%q, %q), want (%q, %q)", tt.raw, bucket, key, tt.wantBucket, tt.wantKey)
			}
		})
	}

	if _, _, err := ParseS3URL("gs://bucket/key.json"); !errors.Is(err, types.ErrUnsupportedSource) {
		t.Errorf("ParseS3URL(gs://) error = %v, want ErrUnsupportedSource", err)
	}
}

func TestS3RepositoryLoad(t *testing.T) {
	s3c := &fakeS3{body: `{"revenue": [{"revenue_id": "r1", "revenue_date": "2025-03-05", "client_name": "MSC", "total_revenue": 120.0}]}`}
	stsc := &fakeSTS{account: "123456789012"}
	repo := newTestRepo(t, "s3://exports/catering/snapshot.json", s3c, stsc)

	for i := 0; i < 2; i++ {
		s, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(s.Revenue) != 1 || s.Revenue[0].TotalRevenue != 120 {
			t.Errorf("Load() revenue = %+v", s.Revenue)
		}
		if !s.FetchedAt.Equal(time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("FetchedAt = %v", s.FetchedAt)
		}
	}

	if s3c.gotBkt != "exports" || s3c.gotKey != "catering/snapshot.json" {
		t.Errorf("GetObject called with %s/%s", s3c.gotBkt, s3c.gotKey)
	}
	if s3c.calls != 2 {
		t.Errorf("GetObject calls = %d, want 2", s3c.calls)
	}
	if stsc.calls != 1 {
		t.Errorf("GetCallerIdentity calls = %d, want 1", stsc.calls)
	}
	if got, want := repo.Describe(), "s3://exports/catering/snapshot.json (account 123456789012)"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestS3RepositoryLoadErrors(t *testing.T) {
	t.Run("credentials", func(t *testing.T) {
		stsErr := errors.New("expired token")
		repo := newTestRepo(t, "s3://b/k.json", &fakeS3{}, &fakeSTS{err: stsErr})
		if _, err := repo.Load(context.Background()); !errors.Is(err, stsErr) {
			t.Errorf("Load() error = %v, want %v", err, stsErr)
		}
	})

	t.Run("get object", func(t *testing.T) {
		s3Err := errors.New("NoSuchKey")
		repo := newTestRepo(t, "s3://b/k.json", &fakeS3{err: s3Err}, &fakeSTS{account: "1"})
		if _, err := repo.Load(context.Background()); !errors.Is(err, s3Err) {
			t.Errorf("Load() error = %v, want %v", err, s3Err)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		repo := newTestRepo(t, "s3://b/k.csv", &fakeS3{body: "a,b"}, &fakeSTS{account: "1"})
		if _, err := repo.Load(context.Background()); !errors.Is(err, types.ErrUnsupportedSource) {
			t.Errorf("Load() error = %v, want ErrUnsupportedSource", err)
		}
	})
}
