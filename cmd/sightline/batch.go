package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cheggaaa/pb"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/bytearena/sightline/common/utils"
	"github.com/bytearena/sightline/common/visibility2d"
)

type batchOptions struct {
	workers        int
	splitCrossings bool
	debug          bool
}

type batchResult struct {
	file   string
	result visibility2d.Result
	err    error
}

// runBatch computes every file with a bounded pool of workers; results come
// back in the order of files.
func runBatch(files []string, workers int, splitCrossings bool, progress func(batchResult)) []batchResult {
	if workers < 1 {
		workers = 1
	}

	results := make([]batchResult, len(files))
	jobs := make(chan int)

	var progressLock sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				_, result, err := computeScene(files[i], splitCrossings)
				results[i] = batchResult{file: files[i], result: result, err: err}

				progressLock.Lock()
				progress(results[i])
				progressLock.Unlock()
			}
		}()
	}

	for i := range files {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	return results
}

func batchAction(out io.Writer, files []string, options batchOptions) error {
	run := uuid.NewV4().String()

	bar := pb.New(len(files))
	bar.Output = os.Stderr
	bar.Start()

	results := runBatch(files, options.workers, options.splitCrossings, func(res batchResult) {
		bar.Increment()

		if options.debug {
			context := utils.Context{"run": run, "file": res.file}
			if res.err != nil {
				context["error"] = res.err.Error()
			}

			utils.DebugWith("batch", "scene computed", context)
		}
	})

	bar.Finish()

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintln(out, chalk.Red.Color(res.file+": "+res.err.Error()))
			continue
		}

		fmt.Fprintf(out, "%s: %d visible, %d obscured\n", res.file, len(res.result.Visible), len(res.result.Obscured))
	}

	if failed > 0 {
		return bettererrors.
			New(fmt.Sprintf("%d of %d scenes failed", failed, len(files))).
			SetContext("run", run)
	}

	return nil
}
