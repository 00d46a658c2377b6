package model

// Room is a bookable meeting room.  Rooms are static reference data:
// three default rooms are seeded when the table is empty and the set
// never changes afterwards within this system.
//
// Fields:
//  ID   – primary key identifier.
//  Name – display name of the room.
type Room struct {
	ID   int64  `json:"id"`   // rooms.id
	Name string `json:"name"` // rooms.name
}
