package epicycle_test

import (
	"math"
	"sync"
	"testing"

	"github.com/joeydtaylor/epicycle/pkg/internal/dft"
	"github.com/joeydtaylor/epicycle/pkg/internal/epicycle"
	"github.com/joeydtaylor/epicycle/pkg/internal/sensor"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-4

func unitSquare() []types.Point {
	return []types.Point{types.Pt(0, 0), types.Pt(1, 0), types.Pt(1, 1), types.Pt(0, 1)}
}

func star(n int) []types.Point {
	points := make([]types.Point, n)
	for i := range points {
		a := types.TwoPi * float64(i) / float64(n)
		r := 1.0
		if i%2 == 1 {
			r = 0.4
		}
		points[i] = types.Pt(r*math.Cos(a), r*math.Sin(a))
	}
	return points
}

func tip(buf []float64) types.Point {
	return types.Pt(buf[len(buf)-2], buf[len(buf)-1])
}

func TestCreatePointsLength(t *testing.T) {
	for _, n := range []int{0, 1, 4, 17} {
		rc := epicycle.Construct(star(n))
		buf := rc.CreatePoints(0.42)
		if len(buf) != 2*(n+1) {
			t.Fatalf("n=%d: expected %d values, got %d", n, 2*(n+1), len(buf))
		}
		if buf[0] != 0 || buf[1] != 0 {
			t.Fatalf("n=%d: chain must start at the origin, got (%v, %v)", n, buf[0], buf[1])
		}
		if rc.Len() != n {
			t.Fatalf("n=%d: Len() = %d", n, rc.Len())
		}
	}
}

func TestConstructEmpty(t *testing.T) {
	rc := epicycle.Construct(nil)

	buf := rc.CreatePoints(0.5)
	if len(buf) != 2 || buf[0] != 0 || buf[1] != 0 {
		t.Fatalf("expected [0 0], got %v", buf)
	}
	if len(rc.Circles()) != 0 {
		t.Fatalf("expected no circles, got %v", rc.Circles())
	}
}

func TestConstructSinglePoint(t *testing.T) {
	rc := epicycle.Construct([]types.Point{types.Pt(3, -2)})

	for _, ts := range []float64{0, 0.3, 0.99} {
		if got := tip(rc.CreatePoints(ts)); !scalar.EqualWithinAbs(got.X, 3, tol) || !scalar.EqualWithinAbs(got.Y, -2, tol) {
			t.Fatalf("t=%v: expected (3, -2), got %v", ts, got)
		}
	}
}

func TestUnitSquareCorners(t *testing.T) {
	rc := epicycle.Construct(unitSquare())

	for i, want := range unitSquare() {
		got := tip(rc.CreatePoints(float64(i) / 4))
		if !scalar.EqualWithinAbs(got.X, want.X, tol) || !scalar.EqualWithinAbs(got.Y, want.Y, tol) {
			t.Fatalf("corner %d: got %v, want %v", i, got, want)
		}
	}
}

func TestConstructCopiesInput(t *testing.T) {
	points := unitSquare()
	rc := epicycle.Construct(points)
	before := rc.CreatePoints(0.25)

	points[1] = types.Pt(100, 100)

	after := rc.CreatePoints(0.25)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("mutating the input changed the handle at index %d", i)
		}
	}
}

func TestCirclesIsACopy(t *testing.T) {
	rc := epicycle.Construct(unitSquare())

	circles := rc.Circles()
	circles[0].Amplitude = 42

	if rc.Circles()[0].Amplitude == 42 {
		t.Fatal("Circles() exposed the internal list")
	}
}

func TestCreatePointsIsIdempotent(t *testing.T) {
	rc := epicycle.Construct(star(31))

	a := rc.CreatePoints(0.3141)
	b := rc.CreatePoints(0.3141)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestConcurrentCreatePoints(t *testing.T) {
	rc := epicycle.Construct(star(64))
	want := rc.CreatePoints(0.7)

	var wg sync.WaitGroup
	errs := make(chan int, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := rc.CreatePoints(0.7)
			for j := range want {
				if got[j] != want[j] {
					errs <- j
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for j := range errs {
		t.Fatalf("concurrent result differs at index %d", j)
	}
}

func TestAmplitudeOrderKeepsTip(t *testing.T) {
	points := star(12)
	plain := epicycle.Construct(points)
	ordered := epicycle.Construct(points, epicycle.WithAmplitudeOrder())

	circles := ordered.Circles()
	for i := 1; i < len(circles); i++ {
		if circles[i].Amplitude > circles[i-1].Amplitude {
			t.Fatalf("circle %d is larger than circle %d", i, i-1)
		}
	}

	for _, ts := range []float64{0, 0.2, 0.55, 0.8} {
		a, b := tip(plain.CreatePoints(ts)), tip(ordered.CreatePoints(ts))
		if !scalar.EqualWithinAbs(a.X, b.X, tol) || !scalar.EqualWithinAbs(a.Y, b.Y, tol) {
			t.Fatalf("t=%v: tips differ %v vs %v", ts, a, b)
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	points := star(300)
	seq := epicycle.Construct(points, epicycle.WithEngineOptions(dft.WithStrategy(types.StrategySequential)))
	par := epicycle.Construct(points, epicycle.WithEngine(dft.NewEngine(
		dft.WithStrategy(types.StrategyParallel),
		dft.WithConcurrencyControl(4, 7),
	)))

	a, b := seq.Circles(), par.Circles()
	for i := range a {
		if a[i].Frequency != b[i].Frequency ||
			!scalar.EqualWithinAbs(a[i].Amplitude, b[i].Amplitude, tol) {
			t.Fatalf("circle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpectrum(t *testing.T) {
	rc := epicycle.Construct(unitSquare())
	spec := rc.Spectrum()

	if spec.Circles != 4 {
		t.Fatalf("expected 4 circles, got %d", spec.Circles)
	}
	if !scalar.EqualWithinAbs(spec.Offset.X, 0.5, tol) || !scalar.EqualWithinAbs(spec.Offset.Y, 0.5, tol) {
		t.Fatalf("offset should be the centroid, got %v", spec.Offset)
	}
	if spec.DominantFrequency != 1 {
		t.Fatalf("expected dominant frequency 1, got %d", spec.DominantFrequency)
	}
}

func TestTrace(t *testing.T) {
	rc := epicycle.Construct(unitSquare())

	trace := rc.Trace(4)
	for i, want := range unitSquare() {
		if !scalar.EqualWithinAbs(trace[i].X, want.X, tol) || !scalar.EqualWithinAbs(trace[i].Y, want.Y, tol) {
			t.Fatalf("step %d: got %v, want %v", i, trace[i], want)
		}
	}
}

func TestSensorNotifications(t *testing.T) {
	var (
		mu        sync.Mutex
		built     int
		evaluated []float64
		started   int
	)
	s := sensor.NewSensor(
		sensor.WithOnConstructFunc(func(_ types.ComponentMetadata, n int) { built = n }),
		sensor.WithOnTransformStartFunc(func(_ types.ComponentMetadata, n int) { started = n }),
		sensor.WithOnEvaluateFunc(func(_ types.ComponentMetadata, ts float64) {
			mu.Lock()
			evaluated = append(evaluated, ts)
			mu.Unlock()
		}),
	)

	rc := epicycle.Construct(unitSquare(),
		epicycle.WithSensor(s),
		epicycle.WithComponentMetadata("square", "square-1"),
	)
	rc.CreatePoints(0.5)
	rc.Points(0.75)

	if built != 4 {
		t.Fatalf("expected construct notification for 4 circles, got %d", built)
	}
	if started != 4 {
		t.Fatalf("default engine should share the sensor, got start=%d", started)
	}
	if len(evaluated) != 2 || evaluated[0] != 0.5 || evaluated[1] != 0.75 {
		t.Fatalf("unexpected evaluate notifications: %v", evaluated)
	}

	meta := rc.GetComponentMetadata()
	if meta.Name != "square" || meta.ID != "square-1" || meta.Type != "EPICYCLE" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestConstructLogs(t *testing.T) {
	logger := &recordingLogger{}
	epicycle.Construct(unitSquare(), epicycle.WithLogger(logger))

	if !logger.has("Construct") {
		t.Fatalf("expected a Construct entry, got %v", logger.messages())
	}
	if !logger.has("Transform") {
		t.Fatalf("default engine should share the logger, got %v", logger.messages())
	}
}
