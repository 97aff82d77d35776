package nakama

import "github.com/google/uuid"

// playerUUID maps a Nakama user id to the domain player identity.
// Nakama ids are already UUIDs; bot ids are synthetic strings and get a
// stable derived UUID instead.
func playerUUID(userID string) uuid.UUID {
	if id, err := uuid.Parse(userID); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(userID))
}
