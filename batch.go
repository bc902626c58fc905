package wavstrip

import "golang.org/x/sync/errgroup"

// ProcessAll converts every path and returns one Result per path, in input
// order. A failing path has its Result.Err set and doesn't stop the others.
func (p *Processor) ProcessAll(paths []string) []Result {
	results := make([]Result, len(paths))

	if p.opts.Workers < 2 {
		for i, path := range paths {
			results[i] = p.processOne(path)
		}

		return results
	}

	var g errgroup.Group
	g.SetLimit(p.opts.Workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = p.processOne(path)
			return nil
		})
	}

	// Failures live in the results, so Wait has nothing to report.
	_ = g.Wait()

	return results
}

func (p *Processor) processOne(path string) Result {
	res, err := p.Process(path)
	res.Err = err

	return res
}
