// Package dynamo loads a schedule dataset from a DynamoDB table scan.
//
// Each item is one record: its attributes become the record's fields,
// with required "category" (string) and "serial" (number) attributes
// forming the composite key.
//
// Create a compatible table with:
//
//	aws dynamodb create-table \
//	  --table-name schedule \
//	  --attribute-definitions AttributeName=category,AttributeType=S AttributeName=serial,AttributeType=N \
//	  --key-schema AttributeName=category,KeyType=HASH AttributeName=serial,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
//
// Usage:
//
//	loader := dynamo.NewLoader(client, "schedule", func(o *dynamo.Options) {
//	    o.Segments = 8
//	    o.Limiter = rate.NewLimiter(100, 10) // stay under read capacity
//	})
//	s, _ := schedgo.Open(ctx, loader)
package dynamo
