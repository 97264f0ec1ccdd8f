package domain

// AuditLimit bounds the audit ring; the oldest entries are dropped
// silently once the limit is exceeded.
const AuditLimit = 1000

// Document is the whole marketplace snapshot. Every mutating operation
// reads it, changes it in memory and writes it back as one unit; the
// store serializes those cycles.
type Document struct {
	Users    []User       `json:"users"`
	Items    []Item       `json:"items"`
	Bookings []Booking    `json:"bookings"`
	Orders   []Order      `json:"orders"`
	Ratings  []Rating     `json:"ratings"`
	Audit    []AuditEntry `json:"audit"`
}

func (d *Document) UserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) UserByPhone(phone string) *User {
	if phone == "" {
		return nil
	}
	for i := range d.Users {
		if d.Users[i].Phone == phone {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) UserByName(name string) *User {
	if name == "" {
		return nil
	}
	for i := range d.Users {
		if d.Users[i].Name == name {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) ItemByID(id string) *Item {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

func (d *Document) BookingByID(id string) *Booking {
	for i := range d.Bookings {
		if d.Bookings[i].ID == id {
			return &d.Bookings[i]
		}
	}
	return nil
}

func (d *Document) OrderByID(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

func (d *Document) RatingsForUser(targetUserID string) []Rating {
	out := make([]Rating, 0)
	for _, r := range d.Ratings {
		if r.TargetUserID == targetUserID {
			out = append(out, r)
		}
	}
	return out
}

// AppendAudit appends an entry and trims the ring to AuditLimit.
func (d *Document) AppendAudit(e AuditEntry) {
	d.Audit = append(d.Audit, e)
	if len(d.Audit) > AuditLimit {
		d.Audit = d.Audit[len(d.Audit)-AuditLimit:]
	}
}
