// Package extract contains the deterministic slot extractors. Every function
// here is pure: the same utterance always yields the same result, with no
// counters, randomness, or hidden state, so a turn can safely be retried.
package extract

import (
	"strings"

	"buildsmart_backend/internal/engine/domain"
)

// roomKeywords maps detection keywords to room types, in detection priority
// order. "master bathroom" must be checked before "bathroom" so the longer
// phrase wins.
var roomKeywords = []struct {
	keywords []string
	roomType domain.RoomType
}{
	{[]string{"kitchen"}, domain.RoomKitchen},
	{[]string{"master bathroom", "master bath"}, domain.RoomMasterBathroom},
	{[]string{"bathroom", "bath"}, domain.RoomBathroom},
	{[]string{"bedroom"}, domain.RoomBedroom},
	{[]string{"living room", "living area", "family room"}, domain.RoomLivingRoom},
	{[]string{"dining room", "dining area"}, domain.RoomDiningRoom},
	{[]string{"basement"}, domain.RoomBasement},
}

// DetectRooms returns the room types mentioned in the utterance, in detection
// order, one entry per type. A master bathroom mention does not also count as
// a plain bathroom.
func DetectRooms(utterance string) []domain.RoomType {
	text := strings.ToLower(utterance)

	var detected []domain.RoomType
	seen := make(map[domain.RoomType]struct{})
	masterMatched := false

	for _, entry := range roomKeywords {
		if entry.roomType == domain.RoomBathroom && masterMatched {
			continue
		}
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				if entry.roomType == domain.RoomMasterBathroom {
					masterMatched = true
				}
				if _, ok := seen[entry.roomType]; !ok {
					seen[entry.roomType] = struct{}{}
					detected = append(detected, entry.roomType)
				}
				break
			}
		}
	}
	return detected
}
