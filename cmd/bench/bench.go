package bench

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gollections/gollections/lib/deque"
	"github.com/gollections/gollections/lib/dict"
	"github.com/gollections/gollections/lib/list"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// workload is one named benchmark body.
type workload struct {
	name string
	fn   func(b *testing.B)
}

func run(_ *cobra.Command, _ []string) error {
	fmt.Println("Collection benchmarks")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("Keys:    %d\n", benchKeySpread)
	fmt.Printf("Threads: %d\n", benchNumThreads)
	fmt.Println()

	fmt.Println("starting benchmarks...")

	results := make(map[string]testing.BenchmarkResult)
	for _, w := range workloads() {
		var result testing.BenchmarkResult
		if !shouldSkip(w.name) {
			result = testing.Benchmark(w.fn)
			observe(w.name, result)
		}
		results[w.name] = result
		printResult(w.name, result)
	}

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	// Dump histograms in Prometheus text format if requested
	if viper.GetBool("metrics") {
		fmt.Println()
		metrics.WritePrometheus(os.Stdout, false)
	}

	return nil
}

// --------------------------------------------------------------------------
// Workloads
// --------------------------------------------------------------------------

func workloads() []workload {
	return []workload{
		{"list-append", benchListAppend},
		{"list-pop", benchListPop},
		{"deque-append", benchDequeAppend},
		{"deque-churn", benchDequeChurn},
		{"deque-rotate", benchDequeRotate},
		{"dict-set", benchDictSet},
		{"dict-get", benchDictGet},
		{"dict-churn", benchDictChurn},
		{"baseline-xsync-store", benchXsyncStore},
		{"baseline-xsync-load", benchXsyncLoad},
	}
}

func benchListAppend(b *testing.B) {
	l := list.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}

func benchListPop(b *testing.B) {
	l := list.New[int]()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Pop()
	}
}

func benchDequeAppend(b *testing.B) {
	d := deque.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Append(i)
	}
}

// benchDequeChurn pushes on one end and pops from the other, the
// queue-like steady state a ring buffer is built for.
func benchDequeChurn(b *testing.B) {
	d := deque.New[int]()
	for i := 0; i < benchKeySpread; i++ {
		d.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Append(i)
		_, _ = d.PopLeft()
	}
}

func benchDequeRotate(b *testing.B) {
	d := deque.New[int]()
	for i := 0; i < benchKeySpread; i++ {
		d.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Rotate(1)
	}
}

func benchDictSet(b *testing.B) {
	d := dict.New[string, int]()
	keys := makeKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Set(keys[i%benchKeySpread], i)
	}
}

func benchDictGet(b *testing.B) {
	d := dict.New[string, int]()
	keys := makeKeys()
	for i, k := range keys {
		d.Set(k, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Get(keys[i%benchKeySpread])
	}
}

func benchDictChurn(b *testing.B) {
	d := dict.New[string, int]()
	keys := makeKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%benchKeySpread]
		d.Set(k, i)
		_, _ = d.Pop(k)
	}
}

// The xsync baselines put the single-threaded dict numbers next to a
// lock-free concurrent map under parallel load.
func benchXsyncStore(b *testing.B) {
	m := xsync.NewMapOf[string, int]()
	keys := makeKeys()
	b.SetParallelism(benchNumThreads)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			m.Store(keys[counter%benchKeySpread], counter)
			counter++
		}
	})
}

func benchXsyncLoad(b *testing.B) {
	m := xsync.NewMapOf[string, int]()
	keys := makeKeys()
	for i, k := range keys {
		m.Store(k, i)
	}
	b.SetParallelism(benchNumThreads)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			_, _ = m.Load(keys[counter%benchKeySpread])
			counter++
		}
	})
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range benchSkip {
		if test == skip {
			return true
		}
	}
	return false
}

func makeKeys() []string {
	keys := make([]string, benchKeySpread)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-key-%d", i)
	}
	return keys
}

// observe records the per-op duration into a histogram so a --metrics run
// exposes all workloads in one Prometheus dump.
func observe(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		return
	}
	h := metrics.GetOrCreateHistogram(fmt.Sprintf(`bench_op_duration_seconds{workload=%q}`, test))
	h.Update(float64(result.NsPerOp()) / 1e9)
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		fmt.Printf("%-24sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	// Print the formatted result
	fmt.Printf("%-24s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]testing.BenchmarkResult) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "Skipped",
		"Threads", "Keys Count",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write test results
	for test, result := range results {
		var nsPerOp float64
		var opsPerSec float64
		var skipped string

		if result.NsPerOp() == 0 {
			skipped = "true"
		} else {
			skipped = "false"
			nsPerOp = math.Max(float64(result.NsPerOp()), 1)
			opsPerSec = 1.0 / (nsPerOp / 1e9)
		}

		row := []string{
			test,
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", opsPerSec),
			skipped,
			strconv.Itoa(benchNumThreads),
			strconv.Itoa(benchKeySpread),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", test, err)
		}
	}

	return nil
}
