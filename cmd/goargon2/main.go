// Command goargon2 hashes and verifies passwords with the goArgon2 library
// and benchmarks a parameter choice before it is deployed.
//
// Usage:
//
//	goargon2 -mode hash [-variant argon2id] [-time N] [-memory KiB] ...
//	goargon2 -mode verify -encoded '$argon2id$...' [-password ...]
//	goargon2 -mode bench [-ops N] [-concurrency W] ...
//
// When -password is omitted and stdin is a terminal, the password is read
// with echo disabled; otherwise it is read from the first line of stdin.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/MrEthical07/goArgon2"
)

func main() {
	var (
		mode        = flag.String("mode", "hash", "hash, verify, or bench")
		variantName = flag.String("variant", "argon2id", "argon2d, argon2i, or argon2id")
		timeCost    = flag.Uint64("time", uint64(goArgon2.DefaultTimeCost), "number of passes over memory")
		memoryCost  = flag.Uint64("memory", uint64(goArgon2.DefaultMemoryCost), "memory cost in KiB")
		parallelism = flag.Uint64("parallelism", uint64(goArgon2.DefaultParallelism), "number of lanes")
		outputLen   = flag.Uint64("length", uint64(goArgon2.DefaultOutputLength), "hash length in bytes")
		saltLen     = flag.Uint64("salt-length", uint64(goArgon2.DefaultSaltLength), "generated salt length in bytes")
		password    = flag.String("password", "", "password; prompted or read from stdin when empty")
		encoded     = flag.String("encoded", "", "encoded record to verify against")
		ops         = flag.Int("ops", 32, "bench: number of hashes")
		concurrency = flag.Int("concurrency", 4, "bench: concurrent workers")
	)
	flag.Parse()

	variant, err := goArgon2.ParseVariant(*variantName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -variant %q\n", *variantName)
		os.Exit(2)
	}
	if *parallelism > 255 {
		fmt.Fprintln(os.Stderr, "-parallelism must be <= 255")
		os.Exit(2)
	}

	cfg := goArgon2.Config{
		Variant:      variant,
		TimeCost:     uint32(*timeCost),
		MemoryCost:   uint32(*memoryCost),
		Parallelism:  uint8(*parallelism),
		SaltLength:   uint32(*saltLen),
		OutputLength: uint32(*outputLen),
	}

	switch *mode {
	case "hash":
		runHash(cfg, *password)
	case "verify":
		runVerify(*encoded, *password)
	case "bench":
		runBench(cfg, *ops, *concurrency)
	default:
		fmt.Fprintf(os.Stderr, "unknown -mode %q\n", *mode)
		os.Exit(2)
	}
}

func runHash(cfg goArgon2.Config, password string) {
	hasher, err := goArgon2.NewHasher(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	pwd, err := readPassword(password, "Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
		os.Exit(1)
	}

	record, err := hasher.Hash(pwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(record)
}

func runVerify(encoded, password string) {
	if encoded == "" {
		fmt.Fprintln(os.Stderr, "-mode verify requires -encoded")
		os.Exit(2)
	}

	pwd, err := readPassword(password, "Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
		os.Exit(1)
	}

	match, err := goArgon2.Check(encoded, pwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify failed: %v\n", err)
		os.Exit(1)
	}
	if !match {
		fmt.Println("mismatch")
		os.Exit(1)
	}
	fmt.Println("match")
}

func runBench(cfg goArgon2.Config, ops, concurrency int) {
	if ops <= 0 || concurrency <= 0 {
		fmt.Fprintln(os.Stderr, "ops and concurrency must be > 0")
		os.Exit(2)
	}

	hasher, err := goArgon2.NewHasher(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	var (
		cursor    int64
		failures  int64
		mu        sync.Mutex
		latencies = make([]time.Duration, 0, ops)
		wg        sync.WaitGroup
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}

				pwd := []byte(uuid.NewString())
				t0 := time.Now()
				_, err := hasher.Hash(pwd)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
					continue
				}

				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	printStats(fmt.Sprintf("hash %s m=%d t=%d p=%d", cfg.Variant, cfg.MemoryCost, cfg.TimeCost, cfg.Parallelism),
		computeStats(time.Since(start), latencies, failures))
}

func readPassword(fromFlag, prompt string) ([]byte, error) {
	if fromFlag != "" {
		return []byte(fromFlag), nil
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		pwd, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return pwd, err
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total, failures: failures}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.1f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
