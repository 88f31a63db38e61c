package backend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/multidev/tensor/cmn/nlog"
	"github.com/multidev/tensor/registry"
)

// Enumerate concurrently registers every device every given backend
// knows about into reg, one goroutine per backend, and returns the
// combined set of records. Grounded on aistore's errgroup-driven fan-out
// for per-target work (e.g. the Sowner/Smap refresh pattern in xact/xs),
// narrowed to "list devices, don't mutate anything."
func Enumerate(ctx context.Context, reg *registry.Registry, backends ...*Backend) ([]registry.Record, error) {
	g, _ := errgroup.WithContext(ctx)
	perBackend := make([][]registry.Record, len(backends))

	for i, be := range backends {
		i, be := i, be
		g.Go(func() error {
			recs := make([]registry.Record, 0, be.Len())
			for _, d := range be.All() {
				rec := registry.Record{Kind: d.Kind().String(), ID: d.String()}
				if err := reg.Register(rec); err != nil {
					return err
				}
				recs = append(recs, rec)
			}
			if nlog.V(4) {
				nlog.Infof("backend %s: enumerated %d devices", be.ID(), len(recs))
			}
			perBackend[i] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []registry.Record
	for _, recs := range perBackend {
		out = append(out, recs...)
	}
	return out, nil
}
