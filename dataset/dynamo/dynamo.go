package dynamo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/schedgo/schedgo/dataset"
	"github.com/schedgo/schedgo/record"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Client is the subset of the DynamoDB API used by the loader.
type Client interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Options configures a Loader.
type Options struct {
	// Segments is the number of parallel scan segments. Defaults to 4.
	Segments int
	// Limiter throttles Scan calls across all segments, to stay within
	// the table's provisioned read capacity. Nil disables throttling.
	Limiter *rate.Limiter
}

// Loader implements dataset.Loader by scanning a DynamoDB table.
//
// Each item carries the record's fields as top-level attributes and must
// include a "category" string attribute and a "serial" number attribute.
type Loader struct {
	client Client
	table  string
	opts   Options
}

var _ dataset.Loader = (*Loader)(nil)

// NewLoader creates a loader scanning the given table.
func NewLoader(client Client, table string, optFns ...func(*Options)) *Loader {
	opts := Options{Segments: 4}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Segments <= 0 {
		opts.Segments = 1
	}
	return &Loader{client: client, table: table, opts: opts}
}

// Load scans the table with parallel segments and assembles the raw
// dataset. The first malformed item fails the whole load.
func (l *Loader) Load(ctx context.Context) (dataset.Raw, error) {
	raw := make(dataset.Raw)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for segment := range l.opts.Segments {
		g.Go(func() error {
			return l.scanSegment(ctx, segment, &mu, raw)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return raw, nil
}

func (l *Loader) scanSegment(ctx context.Context, segment int, mu *sync.Mutex, raw dataset.Raw) error {
	var startKey map[string]types.AttributeValue
	for {
		if l.opts.Limiter != nil {
			if err := l.opts.Limiter.Wait(ctx); err != nil {
				return err
			}
		}

		out, err := l.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(l.table),
			Segment:           aws.Int32(int32(segment)),
			TotalSegments:     aws.Int32(int32(l.opts.Segments)),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return fmt.Errorf("scan %s segment %d: %w", l.table, segment, err)
		}

		for _, item := range out.Items {
			key, fields, err := decodeItem(item)
			if err != nil {
				return err
			}

			mu.Lock()
			_, dup := raw[key]
			if !dup {
				raw[key] = fields
			}
			mu.Unlock()
			if dup {
				return fmt.Errorf("%w: duplicate key %s", dataset.ErrMalformed, key)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func decodeItem(item map[string]types.AttributeValue) (record.Key, record.Fields, error) {
	fields := make(record.Fields, len(item))
	for name, av := range item {
		fields[name] = attrValue(av)
	}

	category, err := fields.String("category")
	if err != nil {
		return record.Key{}, nil, fmt.Errorf("%w: %w", dataset.ErrMalformed, err)
	}
	serial, err := fields.Int("serial")
	if err != nil {
		return record.Key{}, nil, fmt.Errorf("%w: %w", dataset.ErrMalformed, err)
	}

	return record.NewKey(category, serial), fields, nil
}

// attrValue converts a DynamoDB attribute value to the shapes a JSON
// codec would produce, so field accessors behave identically across
// sources. Numbers map to json.Number to avoid precision loss.
func attrValue(av types.AttributeValue) any {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return json.Number(v.Value)
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberB:
		return v.Value
	case *types.AttributeValueMemberSS:
		out := make([]any, len(v.Value))
		for i, s := range v.Value {
			out[i] = s
		}
		return out
	case *types.AttributeValueMemberNS:
		out := make([]any, len(v.Value))
		for i, n := range v.Value {
			out[i] = json.Number(n)
		}
		return out
	case *types.AttributeValueMemberL:
		out := make([]any, len(v.Value))
		for i, e := range v.Value {
			out[i] = attrValue(e)
		}
		return out
	case *types.AttributeValueMemberM:
		out := make(map[string]any, len(v.Value))
		for name, e := range v.Value {
			out[name] = attrValue(e)
		}
		return out
	default:
		return nil
	}
}
