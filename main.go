package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/dot5enko/simple-scan-query/query"
	"github.com/dot5enko/simple-scan-query/schema"
	"github.com/fatih/color"
)

func testCycles(n int, label string, cb func()) {

	before := time.Now()

	for range n {
		cb()
	}

	after := time.Since(before)

	perCycle := after.Nanoseconds() / int64(n)
	log.Printf(" %s per cycle : %d/ns", label, perCycle)
}

func buildSampleQuery(partitionKey int32, partitionValue int32) *query.ScanQuery {

	sq := query.NewScanQuery(partitionKey, partitionValue)

	recent := query.NewConjunctionClause()
	recent.AddPredicate(query.CmpGreater, 1, schema.Int64Value(1724198400))
	recent.AddPredicate(query.CmpEqual, 3, schema.Int32Value(42))

	named := query.NewConjunctionClause()
	named.AddPredicate(query.CmpLike, 9, schema.StringValue("health%"))
	named.AddNullCheck(query.CmpIsNotNull, 1)

	addErr := sq.AddSelection(recent)
	if addErr != nil {
		panic(addErr)
	}

	addErr = sq.AddSelection(named)
	if addErr != nil {
		panic(addErr)
	}

	sq.AddProjection(1)
	sq.AddProjection(3)

	return sq
}

func main() {

	sq := buildSampleQuery(5, 7)

	buf, err := sq.Serialize()
	if err != nil {
		panic(err)
	}

	log.Printf("query %s serialized", sq.Uid.String())
	color.Yellow(" scan buffer [selections=%d][projections=%d] %d bytes", sq.NumSelections(), len(sq.Projections()), len(buf))

	testCycles(100000, "serialize", func() {
		_, serErr := sq.Serialize()
		if serErr != nil {
			panic(serErr)
		}
	})

	batchSize := 64
	batch := make([]*query.ScanQuery, batchSize)
	for i := range batch {
		batch[i] = buildSampleQuery(rand.Int31n(16), rand.Int31n(1024))
	}

	buffers, batchErr := query.SerializeBatch(batch)
	if batchErr != nil {
		panic(batchErr)
	}

	totalBytes := 0
	for _, b := range buffers {
		totalBytes += len(b)
	}

	color.Yellow(" batch of %d queries -> %d bytes total", len(batch), totalBytes)
}
