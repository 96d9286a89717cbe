package schedgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/schedgo/schedgo"
	"github.com/schedgo/schedgo/dataset"
	"github.com/schedgo/schedgo/record"
)

func Example() {
	ctx := context.Background()

	s, err := schedgo.Open(ctx, dataset.File("testdata/schedule.json"))
	if err != nil {
		log.Fatal(err)
	}

	rec, err := s.FetchString("event.33950")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rec)

	venue, err := rec.(*record.Event).Venue()
	if err != nil {
		log.Fatal(err)
	}

	name, err := venue.Fields().String("name")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(name)

	// Output:
	// <Event 'There *Will* Be Bugs'>
	// Portland 251
}
