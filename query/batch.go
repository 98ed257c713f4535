package query

import (
	"fmt"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
)

// SerializeBatch encodes every query concurrently, one goroutine per
// query, result order matches input order. Queries must be distinct
// instances, a single ScanQuery is still not safe for concurrent use.
// Any failure aborts the whole batch with the first error.
func SerializeBatch(queries []*ScanQuery) ([][]byte, error) {

	buffers := make([][]byte, len(queries))

	eg := errgroup.Group{}

	for idx, q := range queries {
		eg.Go(func() error {
			buf, serializeErr := q.Serialize()
			if serializeErr != nil {
				color.Red("skipped query %s because of error: %s", q.Uid.String(), serializeErr.Error())
				return fmt.Errorf("unable to serialize query %d: %s", idx, serializeErr.Error())
			}

			buffers[idx] = buf
			return nil
		})
	}

	err := eg.Wait()
	if err != nil {
		return nil, err
	}

	return buffers, nil
}
