package types

import (
	"encoding/base64"
	"testing"
)

func TestUidGeneratorInit(t *testing.T) {
	ug := &UidGenerator{}
	key := []byte("testkey1testkey2") // 16 bytes for XTEA

	err := ug.Init(1, key)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if ug.seq == nil {
		t.Error("Snowflake generator should be initialized")
	}
	if ug.cipher == nil {
		t.Error("Cipher should be initialized")
	}

	// Already initialized generator must not reinitialize.
	oldSeq := ug.seq
	oldCipher := ug.cipher
	err = ug.Init(3, key)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ug.seq != oldSeq {
		t.Error("Snowflake generator should not be reinitialized")
	}
	if ug.cipher != oldCipher {
		t.Error("Cipher should not be reinitialized")
	}
}

func TestUidGeneratorInitWithInvalidKey(t *testing.T) {
	testCases := []struct {
		name string
		key  []byte
	}{
		{"nil key", nil},
		{"empty key", []byte{}},
		{"too short key", []byte("short")},
		{"15 byte key", []byte("testkey1testkey")},
		{"17 byte key", []byte("testkey1testkey22")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ug := &UidGenerator{}
			if err := ug.Init(1, tc.key); err == nil {
				t.Errorf("Expected error for %s, but got none", tc.name)
			}
		})
	}
}

func TestUidGeneratorGet(t *testing.T) {
	ug := &UidGenerator{}
	key := []byte("testkey1testkey2")
	if err := ug.Init(1, key); err != nil {
		t.Fatalf("Failed to initialize generator: %v", err)
	}

	uids := make(map[Uid]bool)
	for i := 0; i < 1000; i++ {
		uid := ug.Get()
		if uid == ZeroUid {
			t.Errorf("UID %d should not be zero", i)
		}
		if uids[uid] {
			t.Errorf("Duplicate UID generated: %v", uid)
		}
		uids[uid] = true
	}
}

func TestUidGeneratorGetWithUninitializedGenerator(t *testing.T) {
	ug := &UidGenerator{}

	if uid := ug.Get(); uid != ZeroUid {
		t.Error("Expected ZeroUid from uninitialized generator")
	}
	if str := ug.GetStr(); str != "" {
		t.Error("Expected empty string from uninitialized generator")
	}
}

func TestUidGeneratorGetStr(t *testing.T) {
	ug := &UidGenerator{}
	key := []byte("testkey1testkey2")
	if err := ug.Init(1, key); err != nil {
		t.Fatalf("Failed to initialize generator: %v", err)
	}

	uidStr := ug.GetStr()
	if uidStr == "" {
		t.Error("Generated UID string should not be empty")
	}

	decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(uidStr)
	if err != nil {
		t.Errorf("Generated UID string should be valid base64: %v", err)
	}
	if len(decoded) != 8 {
		t.Errorf("Decoded UID should be 8 bytes, got %d", len(decoded))
	}
}

func TestUidGeneratorEncodeDecodeRoundtrip(t *testing.T) {
	ug := &UidGenerator{}
	key := []byte("testkey1testkey2")
	if err := ug.Init(1, key); err != nil {
		t.Fatalf("Failed to initialize generator: %v", err)
	}

	testValues := []int64{0, 1, 42, 12345, 1000000, 9223372036854775807}
	for _, val := range testValues {
		encoded := ug.EncodeInt64(val)
		decoded := ug.DecodeUid(encoded)
		if decoded != val {
			t.Errorf("Roundtrip failed for %d: got %d", val, decoded)
		}
	}

	// Generated UIDs round-trip through the SQL representation.
	uid := ug.Get()
	reencoded := ug.EncodeInt64(ug.DecodeUid(uid))
	if reencoded != uid {
		t.Error("Generated UID roundtrip failed")
	}
}

func TestUidGeneratorConcurrency(t *testing.T) {
	ug := &UidGenerator{}
	key := []byte("testkey1testkey2")
	if err := ug.Init(1, key); err != nil {
		t.Fatalf("Failed to initialize generator: %v", err)
	}

	const numGoroutines = 10
	const uidsPerGoroutine = 100

	uidChan := make(chan Uid, numGoroutines*uidsPerGoroutine)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			for j := 0; j < uidsPerGoroutine; j++ {
				uidChan <- ug.Get()
			}
		}()
	}

	uids := make(map[Uid]bool)
	for i := 0; i < numGoroutines*uidsPerGoroutine; i++ {
		uid := <-uidChan
		if uid == ZeroUid {
			t.Error("Generated UID should not be zero")
		}
		if uids[uid] {
			t.Errorf("Duplicate UID generated in concurrent test: %v", uid)
		}
		uids[uid] = true
	}
}

func BenchmarkUidGeneratorGet(b *testing.B) {
	ug := &UidGenerator{}
	key := []byte("testkey1testkey2")
	if err := ug.Init(1, key); err != nil {
		b.Fatalf("Failed to initialize generator: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ug.Get()
	}
}
