package merge

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// MergeAll merges every region of occ concurrently. Each region needs an
// entry in dims. The first failure cancels the remaining work.
func MergeAll(ctx context.Context, dims map[Region]Dimensions, occ OccupancySet) (map[Region][]Rect, error) {
	regions := occ.Regions()
	for _, region := range regions {
		if _, ok := dims[region]; !ok {
			return nil, fmt.Errorf("merge region %q: no dimensions", region)
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	out := make(map[Region][]Rect, len(regions))

	for _, region := range regions {
		d := dims[region]
		cells := occ.Cells(region)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rects, err := MergeRegion(region, d.Width, d.Height, cells)
			if err != nil {
				return err
			}
			mu.Lock()
			out[region] = rects
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
