package application

import (
	"reflect"
	"testing"

	gem "github.com/sol2204/Vietnam-gas-project/internal/gem/domain"
)

func fptr(v float64) *float64 { return &v }

func unit(id, unitID, name string, capacity *float64, status string) gem.UnitRecord {
	return gem.UnitRecord{
		ID:         id,
		UnitID:     unitID,
		PlantName:  name,
		CapacityMW: capacity,
		Status:     status,
		Lat:        10.5,
		Lon:        106.5,
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if got := NewAggregator(nil).Aggregate(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %d plants", len(got))
	}
}

func TestAggregateMergesUnitsIntoPlant(t *testing.T) {
	units := []gem.UnitRecord{
		unit("1", "A", "Alpha", fptr(100), "operating"),
		unit("1", "B", "Alpha", fptr(50), "construction"),
	}
	plants := NewAggregator(nil).Aggregate(units)
	if len(plants) != 1 {
		t.Fatalf("expected 1 plant, got %d", len(plants))
	}
	plant := plants[0]
	if plant.CapacityMW != 150 {
		t.Fatalf("expected capacity 150, got %v", plant.CapacityMW)
	}
	if plant.Status != "operating, construction" {
		t.Fatalf("expected joined status, got %q", plant.Status)
	}
	if plant.JoinedUnitIDs() != "A, B" {
		t.Fatalf("expected unit ids \"A, B\", got %q", plant.JoinedUnitIDs())
	}
	if plant.NumUnits != 2 {
		t.Fatalf("expected 2 units, got %d", plant.NumUnits)
	}
}

func TestAggregateCapacitySumMatchesGroup(t *testing.T) {
	units := []gem.UnitRecord{
		unit("1", "A", "Alpha", fptr(10), "operating"),
		unit("1", "B", "Alpha", nil, "operating"),
		unit("1", "C", "Alpha", fptr(2.5), "operating"),
	}
	plants := NewAggregator(nil).Aggregate(units)
	if plants[0].CapacityMW != 12.5 {
		t.Fatalf("expected 12.5, got %v", plants[0].CapacityMW)
	}
}

func TestAggregateAllNilCapacitySumsToZero(t *testing.T) {
	units := []gem.UnitRecord{
		unit("1", "A", "Alpha", nil, "operating"),
		unit("1", "B", "Alpha", nil, "operating"),
	}
	plants := NewAggregator(nil).Aggregate(units)
	if plants[0].CapacityMW != 0 {
		t.Fatalf("expected 0 capacity, got %v", plants[0].CapacityMW)
	}
}

func TestAggregateYearReducers(t *testing.T) {
	a := unit("1", "A", "Alpha", nil, "operating")
	a.StartYear = fptr(1998)
	a.RetiredYear = fptr(2030)
	b := unit("1", "B", "Alpha", nil, "operating")
	b.StartYear = fptr(2004)
	b.RetiredYear = nil

	plants := NewAggregator(nil).Aggregate([]gem.UnitRecord{a, b})
	plant := plants[0]
	if plant.StartYear == nil || *plant.StartYear != 1998 {
		t.Fatalf("expected min start year 1998, got %v", plant.StartYear)
	}
	if plant.RetiredYear == nil || *plant.RetiredYear != 2030 {
		t.Fatalf("expected max retired year 2030, got %v", plant.RetiredYear)
	}
	if plant.PlannedRetire != nil {
		t.Fatalf("expected nil planned retire, got %v", *plant.PlannedRetire)
	}
}

func TestAggregateDistinctJoinKeepsFirstSeenOrder(t *testing.T) {
	a := unit("1", "A", "Alpha", nil, "construction")
	a.Owner = "Owner B"
	b := unit("1", "B", "Alpha", nil, "operating")
	b.Owner = "Owner A"
	c := unit("1", "C", "Alpha", nil, "construction")
	c.Owner = "Owner B"

	plants := NewAggregator(nil).Aggregate([]gem.UnitRecord{a, b, c})
	plant := plants[0]
	if plant.Status != "construction, operating" {
		t.Fatalf("expected first-seen order, got %q", plant.Status)
	}
	if plant.Owner != "Owner B, Owner A" {
		t.Fatalf("expected first-seen order, got %q", plant.Owner)
	}
}

func TestAggregatePreservesGroupOrder(t *testing.T) {
	units := []gem.UnitRecord{
		unit("2", "A", "Beta", nil, "operating"),
		unit("1", "A", "Alpha", nil, "operating"),
		unit("2", "B", "Beta", nil, "operating"),
	}
	plants := NewAggregator(nil).Aggregate(units)
	if len(plants) != 2 {
		t.Fatalf("expected 2 plants, got %d", len(plants))
	}
	if plants[0].PlantName != "Beta" || plants[1].PlantName != "Alpha" {
		t.Fatalf("group order not preserved: %q, %q", plants[0].PlantName, plants[1].PlantName)
	}
}

func TestAggregateFallsBackToIDKey(t *testing.T) {
	units := []gem.UnitRecord{
		unit("1", "A", "", nil, "operating"),
		unit("1", "B", "", nil, "operating"),
		unit("2", "A", "", nil, "operating"),
	}
	plants := NewAggregator(nil).Aggregate(units)
	if len(plants) != 2 {
		t.Fatalf("expected 2 plants keyed by id, got %d", len(plants))
	}
	if plants[0].ID != "1" || plants[0].NumUnits != 2 {
		t.Fatalf("unexpected first plant: %+v", plants[0])
	}
}

func TestAggregateIdempotentOnSingleUnitPlants(t *testing.T) {
	a := unit("1", "A", "Alpha", fptr(100), "operating")
	a.Fuel = "gas"
	a.Owner = "Owner A"
	b := unit("2", "B", "Beta", fptr(200), "announced")

	plants := NewAggregator(nil).Aggregate([]gem.UnitRecord{a, b})
	if len(plants) != 2 {
		t.Fatalf("expected 2 plants, got %d", len(plants))
	}
	for i, src := range []gem.UnitRecord{a, b} {
		plant := plants[i]
		if plant.NumUnits != 1 {
			t.Fatalf("expected num_units 1, got %d", plant.NumUnits)
		}
		if plant.CapacityMW != *src.CapacityMW {
			t.Fatalf("capacity changed: %v != %v", plant.CapacityMW, *src.CapacityMW)
		}
		if plant.Status != src.Status || plant.Fuel != src.Fuel || plant.Owner != src.Owner {
			t.Fatalf("single-unit fields changed: %+v", plant)
		}
		if !reflect.DeepEqual(plant.UnitIDs, []string{src.UnitID}) {
			t.Fatalf("expected list-wrapped unit id, got %v", plant.UnitIDs)
		}
	}
}

func TestReduceNumericMinMaxIgnoreNil(t *testing.T) {
	values := []*float64{nil, fptr(3), fptr(1), nil, fptr(2)}
	if got := reduceNumeric(ReduceMin, values); got == nil || *got != 1 {
		t.Fatalf("expected min 1, got %v", got)
	}
	if got := reduceNumeric(ReduceMax, values); got == nil || *got != 3 {
		t.Fatalf("expected max 3, got %v", got)
	}
	if got := reduceNumeric(ReduceMin, []*float64{nil, nil}); got != nil {
		t.Fatalf("expected nil for all-nil group, got %v", *got)
	}
}

func TestDistinctDropsEmptyAndDuplicates(t *testing.T) {
	got := distinct([]string{"b", "", "a", "b", "a"})
	if !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("unexpected distinct result: %v", got)
	}
}
