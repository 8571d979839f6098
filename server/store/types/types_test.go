package types

import (
	"encoding/json"
	"testing"
)

func TestUidTextRoundtrip(t *testing.T) {
	uids := []Uid{1, 42, 0x8000000000000000, 0xFFFFFFFFFFFFFFFF}
	for _, uid := range uids {
		str := uid.String()
		if len(str) != uidBase64Unpadded {
			t.Errorf("Uid %d: string length expected %d, got %d", uint64(uid), uidBase64Unpadded, len(str))
		}
		parsed := ParseUid(str)
		if parsed != uid {
			t.Errorf("Uid %d: roundtrip produced %d", uint64(uid), uint64(parsed))
		}
	}
}

func TestUidZeroString(t *testing.T) {
	if ZeroUid.String() != "" {
		t.Errorf("ZeroUid should serialize to an empty string, got '%s'", ZeroUid.String())
	}
	if !ZeroUid.IsZero() {
		t.Error("ZeroUid.IsZero() must be true")
	}
}

func TestParseUidInvalid(t *testing.T) {
	invalid := []string{"", "short", "way-too-long-to-be-an-uid", "###########"}
	for _, s := range invalid {
		if uid := ParseUid(s); !uid.IsZero() {
			t.Errorf("ParseUid('%s') expected ZeroUid, got %v", s, uid)
		}
	}
}

func TestUidJSON(t *testing.T) {
	uid := Uid(12345)
	data, err := json.Marshal(uid)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var parsed Uid
	if err = json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if parsed != uid {
		t.Errorf("JSON roundtrip: expected %v, got %v", uid, parsed)
	}
}

func TestPairToSymmetric(t *testing.T) {
	u1 := Uid(125)
	u2 := Uid(98703)
	p1 := u1.PairTo(u2)
	p2 := u2.PairTo(u1)
	if p1 != p2 {
		t.Errorf("Pair key must not depend on argument order: '%s' vs '%s'", p1, p2)
	}
	if len(p1) != 2+pairBase64Unpadded {
		t.Errorf("Pair key length expected %d, got %d", 2+pairBase64Unpadded, len(p1))
	}
}

func TestPairToDegenerate(t *testing.T) {
	u1 := Uid(125)
	if key := u1.PairTo(u1); key != "" {
		t.Errorf("Pair with self must be empty, got '%s'", key)
	}
	if key := u1.PairTo(ZeroUid); key != "" {
		t.Errorf("Pair with zero must be empty, got '%s'", key)
	}
	if key := ZeroUid.PairTo(u1); key != "" {
		t.Errorf("Pair from zero must be empty, got '%s'", key)
	}
}

func TestPairToUnique(t *testing.T) {
	// Distinct unordered pairs must produce distinct keys.
	pairs := [][2]Uid{{1, 2}, {1, 3}, {2, 3}, {1, 200}, {100, 200}}
	seen := make(map[string][2]Uid)
	for _, p := range pairs {
		key := p[0].PairTo(p[1])
		if prev, ok := seen[key]; ok {
			t.Errorf("Pairs %v and %v share key '%s'", prev, p, key)
		}
		seen[key] = p
	}
}

func TestParsePair(t *testing.T) {
	u1 := Uid(125)
	u2 := Uid(98703)
	key := u1.PairTo(u2)

	p1, p2, err := ParsePair(key)
	if err != nil {
		t.Fatalf("ParsePair failed: %v", err)
	}
	// The smaller uid is always stored first.
	if p1 != u1 || p2 != u2 {
		t.Errorf("ParsePair: expected (%v, %v), got (%v, %v)", u1, u2, p1, p2)
	}

	if _, _, err = ParsePair("bogus"); err == nil {
		t.Error("ParsePair should reject a key without the prefix")
	}
	if _, _, err = ParsePair("dmtooshort"); err == nil {
		t.Error("ParsePair should reject a truncated key")
	}
}

func TestObjHeaderUid(t *testing.T) {
	uid := Uid(987)
	var h ObjHeader
	h.SetUid(uid)
	if h.Uid() != uid {
		t.Errorf("SetUid/Uid mismatch: %v vs %v", uid, h.Uid())
	}
	if h.Id != uid.String() {
		t.Errorf("SetUid should update Id: expected '%s', got '%s'", uid.String(), h.Id)
	}

	// Uid() decodes a string Id lazily.
	h2 := ObjHeader{Id: uid.String()}
	if h2.Uid() != uid {
		t.Errorf("Uid() should decode Id: expected %v, got %v", uid, h2.Uid())
	}
}

func TestFriendshipOtherUser(t *testing.T) {
	f := &Friendship{UserLo: Uid(1), UserHi: Uid(2)}
	if f.OtherUser(Uid(1)) != Uid(2) {
		t.Error("OtherUser(lo) should return hi")
	}
	if f.OtherUser(Uid(2)) != Uid(1) {
		t.Error("OtherUser(hi) should return lo")
	}
}

func TestUserProfile(t *testing.T) {
	user := &User{Handle: "alice", Username: "Alice", Public: map[string]string{"bio": "hi"}}
	user.SetUid(Uid(11))

	p := user.Profile()
	if p.Id != Uid(11).String() {
		t.Errorf("Profile id: expected '%s', got '%s'", Uid(11).String(), p.Id)
	}
	if p.Handle != "alice" || p.Username != "Alice" {
		t.Errorf("Profile fields mismatch: %+v", p)
	}
	if p.Public == nil {
		t.Error("Profile should carry the public fields")
	}
}

func TestStoreErrorMessages(t *testing.T) {
	if ErrNotFound.Error() != "not found" {
		t.Errorf("Unexpected error text: '%s'", ErrNotFound.Error())
	}
	var err error = ErrDuplicate
	if _, ok := err.(StoreError); !ok {
		t.Error("StoreError values must satisfy the error interface")
	}
}
