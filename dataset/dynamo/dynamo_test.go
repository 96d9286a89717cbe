package dynamo

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/schedgo/schedgo/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func item(category string, serial, extra string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"category": &types.AttributeValueMemberS{Value: category},
		"serial":   &types.AttributeValueMemberN{Value: serial},
		"name":     &types.AttributeValueMemberS{Value: extra},
	}
}

// fakeClient distributes canned items across scan segments and forces
// one pagination round on segment 0.
type fakeClient struct {
	segments map[int32][]map[string]types.AttributeValue
}

func (c *fakeClient) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	segment := aws.ToInt32(params.Segment)
	items := c.segments[segment]

	if segment == 0 && len(items) > 1 {
		if params.ExclusiveStartKey == nil {
			// First page: half the items plus a continuation key.
			return &dynamodb.ScanOutput{
				Items:            items[:1],
				LastEvaluatedKey: items[0],
			}, nil
		}
		return &dynamodb.ScanOutput{Items: items[1:]}, nil
	}

	return &dynamodb.ScanOutput{Items: items}, nil
}

func TestLoader(t *testing.T) {
	client := &fakeClient{segments: map[int32][]map[string]types.AttributeValue{
		0: {
			item("venue", "1469", "Exhibit Hall C"),
			item("venue", "1449", "Portland 251"),
		},
		1: {
			item("event", "33950", "There *Will* Be Bugs"),
		},
	}}

	loader := NewLoader(client, "schedule", func(o *Options) {
		o.Segments = 2
		o.Limiter = rate.NewLimiter(rate.Inf, 1)
	})

	raw, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 3)

	venue := raw[record.NewKey("venue", 1469)]
	require.NotNil(t, venue)
	name, err := venue.String("name")
	require.NoError(t, err)
	assert.Equal(t, "Exhibit Hall C", name)

	serial, err := venue.Int("serial")
	require.NoError(t, err)
	assert.Equal(t, int64(1469), serial)
}

func TestLoaderMissingCategory(t *testing.T) {
	client := &fakeClient{segments: map[int32][]map[string]types.AttributeValue{
		0: {{
			"serial": &types.AttributeValueMemberN{Value: "1"},
		}},
	}}

	loader := NewLoader(client, "schedule", func(o *Options) { o.Segments = 1 })
	_, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, record.ErrFieldNotFound)
}
