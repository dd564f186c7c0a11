package appointment

import (
	"testing"

	"github.com/google/uuid"
)

func TestBucketBySlot(t *testing.T) {
	a1 := appt(consultantX, 9, 45, 10, 15)
	a2 := appt(consultantX, 9, 0, 9, 30)
	a3 := appt(consultantY, 9, 10, 9, 40)
	a4 := appt(consultantX, 14, 0, 15, 0)

	buckets := BucketBySlot([]Appointment{a1, a2, a3, a4})

	keyX9 := consultantX.String() + "-09:00"
	if got := buckets[keyX9]; len(got) != 2 {
		t.Fatalf("expected 2 entries in %s, got %d", keyX9, len(got))
	} else if got[0].ID != a2.ID || got[1].ID != a1.ID {
		t.Error("bucket entries must be sorted by start ascending")
	}

	if got := buckets[consultantY.String()+"-09:00"]; len(got) != 1 || got[0].ID != a3.ID {
		t.Errorf("unexpected bucket for Y: %+v", got)
	}
	if got := buckets[consultantX.String()+"-14:00"]; len(got) != 1 || got[0].ID != a4.ID {
		t.Errorf("unexpected 14:00 bucket: %+v", got)
	}
	if len(buckets) != 3 {
		t.Errorf("expected 3 buckets, got %d", len(buckets))
	}
}

func TestBucketBySlot_Unassigned(t *testing.T) {
	a := appt(uuid.Nil, 9, 0, 9, 30)
	buckets := BucketBySlot([]Appointment{a})

	if got := buckets[Unassigned+"-09:00"]; len(got) != 1 {
		t.Errorf("expected unassigned bucket, got %+v", buckets)
	}
}

func TestBucketBySlot_Empty(t *testing.T) {
	buckets := BucketBySlot(nil)
	if buckets == nil {
		t.Fatal("expected empty map, not nil")
	}
	if len(buckets) != 0 {
		t.Errorf("expected no buckets, got %+v", buckets)
	}
}
