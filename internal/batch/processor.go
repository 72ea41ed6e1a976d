package batch

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Job is one asset-generation unit of work. Jobs are independent pure
// functions from parameters to output files, so they can run on any worker.
type Job struct {
	Name    string
	Kind    string   // "audio", "model", "texture"
	Outputs []string // files the job writes, relative to the output root
	Run     func() error
}

// Result holds the outcome of one job.
type Result struct {
	Name    string
	Kind    string
	Outputs []string
	Success bool
	Error   string
}

// Run executes all jobs using a worker pool and returns per-job results in
// job order. workers == 1 gives strictly sequential generation.
func Run(workers int, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f assets/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = runJob(jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func runJob(j Job) Result {
	if err := j.Run(); err != nil {
		return Result{
			Name:    j.Name,
			Kind:    j.Kind,
			Outputs: j.Outputs,
			Error:   err.Error(),
		}
	}
	return Result{
		Name:    j.Name,
		Kind:    j.Kind,
		Outputs: j.Outputs,
		Success: true,
	}
}
