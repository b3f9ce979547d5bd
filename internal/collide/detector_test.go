package collide

import (
	"testing"

	"github.com/san-kum/gallery/internal/dynamo"
)

type frame struct {
	pos dynamo.Vector3
	q   dynamo.Quaternion
}

func (f frame) Position() dynamo.Vector3       { return f.pos }
func (f frame) Orientation() dynamo.Quaternion { return f.q }

func at(x, y, z float64) frame { return frame{pos: dynamo.Vec3(x, y, z), q: dynamo.Identity()} }

var ground = Plane{Normal: dynamo.Vec3(0, 1, 0), Offset: -2}

func TestBoxAndHalfSpace(t *testing.T) {
	half := dynamo.Vec3(1.2, 3, 1)

	tests := []struct {
		name     string
		box      Box
		hit      bool
		contacts int
	}{
		{"standing target clear of lowered ground", Box{at(0, 2.9, 9.5), half}, false, 0},
		{"bottom face through ground", Box{at(0, 0.5, 9.5), half}, true, 4},
		{"whole box below ground", Box{at(0, -10, 9.5), half}, true, 8},
		{"collapsed box above ground", Box{at(0, 1, 9.5), dynamo.Vector3{}}, false, 0},
		{"collapsed box below ground", Box{at(0, -3, 9.5), dynamo.Vector3{}}, true, 8},
		{"rotated 180 degrees about Y", Box{frame{dynamo.Vec3(0, 0.5, 0), dynamo.Quaternion{J: 1}}, half}, true, 4},
	}

	d := NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := NewContactData(256)
			if got := d.BoxAndHalfSpace(tt.box, ground, data); got != tt.hit {
				t.Errorf("BoxAndHalfSpace = %v, want %v", got, tt.hit)
			}
			if len(data.Contacts) != tt.contacts {
				t.Errorf("contacts = %d, want %d", len(data.Contacts), tt.contacts)
			}
			for _, c := range data.Contacts {
				if c.Penetration < 0 {
					t.Errorf("negative penetration %v", c.Penetration)
				}
			}
		})
	}
}

func TestBoxAndSphere(t *testing.T) {
	box := Box{at(0, 2.9, 9.5), dynamo.Vec3(1.2, 3, 1)}

	tests := []struct {
		name   string
		centre frame
		hit    bool
	}{
		{"inside the box", at(0, 3, 9.5), true},
		{"touching the front face", at(0.5, 4, 8.48), true},
		{"just short of the front face", at(0.5, 4, 8.4), false},
		{"wide of the box", at(1.3, 3, 9.5), false},
		{"above the box", at(0, 6, 9.5), false},
	}

	d := NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := NewContactData(256)
			got := d.BoxAndSphere(box, Sphere{tt.centre, 0.03}, data)
			if got != tt.hit {
				t.Errorf("BoxAndSphere = %v, want %v", got, tt.hit)
			}
			if got && len(data.Contacts) != 1 {
				t.Errorf("contacts = %d, want 1", len(data.Contacts))
			}
		})
	}
}

func TestContactBudget(t *testing.T) {
	d := NewDetector()
	data := NewContactData(6)

	sunk := Box{at(0, -10, 0), dynamo.Vec3(1, 1, 1)}
	if !d.BoxAndHalfSpace(sunk, ground, data) {
		t.Fatal("expected contacts up to the budget")
	}
	if len(data.Contacts) != 6 {
		t.Errorf("contacts = %d, want budget of 6", len(data.Contacts))
	}
	if data.HasMoreContacts() || data.Left() != 0 {
		t.Error("budget should be exhausted")
	}

	if d.BoxAndSphere(sunk, Sphere{at(0, -10, 0), 0.5}, data) {
		t.Error("exhausted buffer must refuse further contacts")
	}

	data.Reset(6)
	if !data.HasMoreContacts() || len(data.Contacts) != 0 {
		t.Error("Reset did not clear the buffer")
	}
}

func TestContactDataCarriesMaterial(t *testing.T) {
	data := NewContactData(4)
	data.Friction = 0.9
	data.Restitution = 0.1

	NewDetector().BoxAndSphere(Box{at(0, 0, 0), dynamo.Vec3(1, 1, 1)}, Sphere{at(0, 0, 0), 0.1}, data)
	if len(data.Contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(data.Contacts))
	}
	if c := data.Contacts[0]; c.Friction != 0.9 || c.Restitution != 0.1 {
		t.Errorf("material = (%v, %v), want (0.9, 0.1)", c.Friction, c.Restitution)
	}
}
