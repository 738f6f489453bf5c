package domain

// Patch is a best-effort structured update produced by the free-form
// responder. The deterministic extractors remain the source of truth: a patch
// only fills slots that are still empty and never overwrites extracted values.
type Patch struct {
	Rooms       []RoomType  `json:"rooms,omitempty"`
	Budget      *Budget     `json:"budget,omitempty"`
	DesignStyle DesignStyle `json:"designStyle,omitempty"`
	Colors      []string    `json:"colorPreferences,omitempty"`
	Materials   []string    `json:"materialPreferences,omitempty"`
	Contact     *Contact    `json:"contact,omitempty"`
}

// IsEmpty reports whether the patch carries no data.
func (p Patch) IsEmpty() bool {
	return len(p.Rooms) == 0 && p.Budget == nil && p.DesignStyle == "" &&
		len(p.Colors) == 0 && len(p.Materials) == 0 && p.Contact == nil
}

// ApplyPatch merges a patch into a copy of the state. Only empty slots are
// filled; rooms are appended only for types not already present.
func (s State) ApplyPatch(p Patch) State {
	out := s.Clone()

	for _, roomType := range p.Rooms {
		if !IsKnownRoomType(roomType) {
			continue
		}
		if !out.hasRoom(roomType) {
			out.Rooms = append(out.Rooms, Room{Type: roomType})
		}
	}
	if out.Budget == nil && p.Budget != nil && p.Budget.Min <= p.Budget.Max {
		budget := *p.Budget
		out.Budget = &budget
	}
	if out.Preferences.DesignStyle == "" && p.DesignStyle != "" && IsKnownDesignStyle(p.DesignStyle) {
		out.Preferences.DesignStyle = p.DesignStyle
	}
	if len(out.Preferences.Colors) == 0 && len(p.Colors) > 0 {
		out.Preferences.Colors = append([]string(nil), p.Colors...)
	}
	if len(out.Preferences.Materials) == 0 && len(p.Materials) > 0 {
		out.Preferences.Materials = append([]string(nil), p.Materials...)
	}
	if out.Contact == nil && p.Contact != nil {
		contact := *p.Contact
		out.Contact = &contact
	}
	return out
}

func (s State) hasRoom(roomType RoomType) bool {
	for _, room := range s.Rooms {
		if room.Type == roomType {
			return true
		}
	}
	return false
}
