package collide

import "github.com/san-kum/gallery/internal/dynamo"

type Contact struct {
	Point       dynamo.Vector3
	Normal      dynamo.Vector3
	Penetration float64
	Bodies      [2]Frame
	Friction    float64
	Restitution float64
}

// ContactData is a budgeted buffer: once Max contacts are recorded in a
// frame, detectors stop producing more until Reset.
type ContactData struct {
	Contacts    []Contact
	Max         int
	Friction    float64
	Restitution float64
	Tolerance   float64
}

func NewContactData(max int) *ContactData {
	return &ContactData{
		Contacts: make([]Contact, 0, max),
		Max:      max,
	}
}

func (c *ContactData) Reset(max int) {
	c.Max = max
	c.Contacts = c.Contacts[:0]
}

func (c *ContactData) HasMoreContacts() bool { return len(c.Contacts) < c.Max }

func (c *ContactData) Left() int { return c.Max - len(c.Contacts) }

func (c *ContactData) add(ct Contact) bool {
	if !c.HasMoreContacts() {
		return false
	}
	ct.Friction = c.Friction
	ct.Restitution = c.Restitution
	c.Contacts = append(c.Contacts, ct)
	return true
}
