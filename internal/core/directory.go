package core

// Directory maps room names to their member connections. Rooms are created
// lazily on first join and reclaimed once the last member is gone; member
// order is join order, which is what presence lists report.
//
// Directory is not safe for concurrent use; the hub serializes access.
type Directory struct {
	rooms  map[string]*roomMembers
	byConn map[string]map[string]struct{} // conn id -> rooms it appears in
}

type roomMembers struct {
	names map[string]string // conn id -> display name
	order []string          // conn ids in join order
}

// NewDirectory constructs an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		rooms:  make(map[string]*roomMembers),
		byConn: make(map[string]map[string]struct{}),
	}
}

// Join adds the connection to the room, creating the room if needed.
// Joining again overwrites the display name and keeps the original position.
func (d *Directory) Join(room, id, name string) {
	rm, ok := d.rooms[room]
	if !ok {
		rm = &roomMembers{names: make(map[string]string)}
		d.rooms[room] = rm
	}
	if _, member := rm.names[id]; !member {
		rm.order = append(rm.order, id)
	}
	rm.names[id] = name

	set, ok := d.byConn[id]
	if !ok {
		set = make(map[string]struct{})
		d.byConn[id] = set
	}
	set[room] = struct{}{}
}

// Leave removes the connection from the room and returns the display name
// it was stored under. A miss on either room or member is a no-op.
func (d *Directory) Leave(room, id string) (string, bool) {
	rm, ok := d.rooms[room]
	if !ok {
		return "", false
	}
	name, member := rm.names[id]
	if !member {
		return "", false
	}
	delete(rm.names, id)
	for i, memberID := range rm.order {
		if memberID == id {
			rm.order = append(rm.order[:i], rm.order[i+1:]...)
			break
		}
	}
	if len(rm.names) == 0 {
		delete(d.rooms, room)
	}

	if set := d.byConn[id]; set != nil {
		delete(set, room)
		if len(set) == 0 {
			delete(d.byConn, id)
		}
	}
	return name, true
}

// Members returns the room's display names in join order.
func (d *Directory) Members(room string) []string {
	rm, ok := d.rooms[room]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(rm.order))
	for _, id := range rm.order {
		out = append(out, rm.names[id])
	}
	return out
}

// MemberIDs returns the room's connection ids in join order.
func (d *Directory) MemberIDs(room string) []string {
	rm, ok := d.rooms[room]
	if !ok {
		return nil
	}
	out := make([]string, len(rm.order))
	copy(out, rm.order)
	return out
}

// IsMember reports whether the connection is joined to the room.
func (d *Directory) IsMember(room, id string) bool {
	rm, ok := d.rooms[room]
	if !ok {
		return false
	}
	_, member := rm.names[id]
	return member
}

// RoomsOf returns every room the connection appears in. Under the one-room
// invariant this is at most one entry, but disconnect handling sweeps them
// all rather than trust a single lookup.
func (d *Directory) RoomsOf(id string) []string {
	set := d.byConn[id]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for room := range set {
		out = append(out, room)
	}
	return out
}
