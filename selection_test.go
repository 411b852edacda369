package corridor

import "testing"

// itemsAtDepths builds items whose effective depth at cameraDepth 0 equals
// the given values.
func itemsAtDepths(depths ...float64) []*Item {
	items := make([]*Item, len(depths))
	for i, z := range depths {
		items[i] = &Item{ID: i, Placement: Placement{Z: z}}
	}
	return items
}

func TestResolvePicksClosestToSweetSpot(t *testing.T) {
	items := itemsAtDepths(-2000, -205, -800)
	item, ok := DefaultResolver.Resolve(items, 0)
	if !ok {
		t.Fatal("Resolve returned none")
	}
	if item.Placement.Z != -205 {
		t.Errorf("picked Z = %f, want -205", item.Placement.Z)
	}
}

func TestResolveRespectsCameraDepth(t *testing.T) {
	// Item at Z = -3000 with the camera advanced 2800: effective depth
	// -200, exactly on the sweet spot.
	items := itemsAtDepths(-3000, -6000)
	item, ok := DefaultResolver.Resolve(items, 2800)
	if !ok || item.ID != 0 {
		t.Fatalf("Resolve = (%v, %v), want item 0", item, ok)
	}
}

func TestResolveCutoff(t *testing.T) {
	// Every item further than MaxDistance from the sweet spot.
	items := itemsAtDepths(-5000, -8000, 4000)
	if item, ok := DefaultResolver.Resolve(items, 0); ok {
		t.Errorf("Resolve = %v, want none beyond cutoff", item)
	}
}

func TestResolveCutoffBoundary(t *testing.T) {
	// Exactly MaxDistance away is still accepted; only exceeding rejects.
	items := itemsAtDepths(DefaultResolver.SweetSpot - DefaultResolver.MaxDistance)
	if _, ok := DefaultResolver.Resolve(items, 0); !ok {
		t.Error("Resolve rejected item exactly at the cutoff")
	}
}

func TestResolveTieFirstWins(t *testing.T) {
	// Two items equidistant from the sweet spot on either side.
	items := itemsAtDepths(-300, -100)
	item, ok := DefaultResolver.Resolve(items, 0)
	if !ok {
		t.Fatal("Resolve returned none")
	}
	if item.ID != 0 {
		t.Errorf("tie broke to item %d, want first item 0", item.ID)
	}
}

func TestResolveEmpty(t *testing.T) {
	if item, ok := DefaultResolver.Resolve(nil, 0); ok {
		t.Errorf("Resolve(nil) = %v, want none", item)
	}
}

func BenchmarkResolve(b *testing.B) {
	items := GenerateItems(DefaultLayout, 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DefaultResolver.Resolve(items, float64(i%100000))
	}
}
