// Package profilers sets up profiling of the match driver and labels the searches, so the search
// throughput (nodes/s) of each searcher can be told apart in a profile.
//
// If linked, it will install the flags -prof, -cpu_profile and -mem_profile.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProfiler   = flag.Int("prof", 0, "If > 0, serves the pprof HTTP profiler at the given port and keeps the program alive at the end.")
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write heap profile to `file` at the end of the program")
	profilerAddr   string

	// globalCtx is set on the call to Setup.
	globalCtx context.Context
)

// Label keys attached to the searches by LabelSearch.
const (
	SearcherLabel = "searcher"
	MatchLabel    = "match"
)

// Setup starts the HTTP (flag -prof) and CPU profilers (flag -cpu_profile), if they were configured.
// You should follow with a deferred call to OnQuit.
func Setup(ctx context.Context) {
	globalCtx = ctx
	if httpProfilerEnabled() {
		setupHTTPProfiler()
	}
	if *flagCPUProfile != "" {
		createCPUProfile()
	}
}

// OnQuit must be deferred just after Setup: it stops the CPU profile, writes the heap profile and,
// with -prof, keeps the program alive until interrupted.
//
// A panic is propagated without keeping the program alive.
func OnQuit() {
	if *flagCPUProfile != "" {
		pprof.StopCPUProfile()
	}
	if err := recover(); err != nil {
		panic(err)
	}
	if *flagMemProfile != "" {
		if err := writeHeapProfile(*flagMemProfile); err != nil {
			klog.Errorf("Heap profile not written: %+v", err)
		}
	}
	if httpProfilerEnabled() {
		httpProfilerOnQuit()
	}
}

// LabelSearch runs search with the profiler labels of the searcher and of the match, so their CPU
// samples can be filtered with `go tool pprof -tagfocus=searcher=...`.
func LabelSearch(ctx context.Context, searcher, match string, search func(ctx context.Context)) {
	pprof.Do(ctx, pprof.Labels(SearcherLabel, searcher, MatchLabel, match), search)
}

func httpProfilerEnabled() bool {
	return *flagProfiler > 0
}

// createCPUProfile creates the file pointed by *flagCPUProfile and starts the CPU profiling there.
func createCPUProfile() {
	f, err := os.Create(*flagCPUProfile)
	if err != nil {
		klog.Fatalf("could not create CPU profile %q: %+v", *flagCPUProfile, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		klog.Fatalf("could not start CPU profile: %+v", err)
	}
	klog.V(1).Infof("CPU profile being written to %s", *flagCPUProfile)
}

// writeHeapProfile after a garbage collection, so it reflects the live objects.
func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating heap profile %q", path)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing heap profile %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing heap profile %q", path)
	}
	klog.V(1).Infof("Heap profile written to %s", path)
	return nil
}

func setupHTTPProfiler() {
	profilerAddr = fmt.Sprintf("localhost:%d", *flagProfiler)
	fmt.Printf("Starting profiler on %s/debug/pprof\n", profilerAddr)
	fmt.Printf("- Search CPU profile by searcher: $ go tool pprof -tagfocus=%s=alphabeta %s/debug/pprof/profile\n",
		SearcherLabel, profilerAddr)
	fmt.Printf("- Program will be kept alive on end, you will have to interrupt it (Ctrl+C) to exit\n")
	go func() {
		klog.Fatal(http.ListenAndServe(profilerAddr, nil))
	}()
}

// httpProfilerOnQuit keeps the program alive until globalCtx is done, so the profiler can still be read.
func httpProfilerOnQuit() {
	if globalCtx.Err() != nil {
		// Already interrupted.
		return
	}
	fmt.Printf("- Match finished: kept alive with profiler opened at %s/debug/pprof\n", profilerAddr)
	fmt.Printf("- Interrupt (Ctrl+C) to exit\n")
	<-globalCtx.Done()
	fmt.Printf("... exiting ...\n")
}
