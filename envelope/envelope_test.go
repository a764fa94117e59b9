package envelope

import (
	"bytes"
	"testing"
)

func testKey() [32]byte {
	var k [32]byte
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func TestSealOpenRoundTrip(t *testing.T) {
	key := testKey()
	plaintext := []byte("The quick brown fox jumps over")
	blob, err := Seal(key, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Open(key, blob)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open(Seal(p)) = %q, want %q", got, plaintext)
	}
}

func TestSealEmptyPayload(t *testing.T) {
	key := testKey()
	blob, err := Seal(key, nil)
	if err != nil {
		t.Fatal(err)
	}
	// One full pad block plus the IV: 16 + 16 = 32 bytes.
	if len(blob) != 2*blockSize {
		t.Fatalf("Seal(nil) length = %d, want %d", len(blob), 2*blockSize)
	}
	got, err := Open(key, blob)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("Open recovered %d bytes, want 0", len(got))
	}
}

func TestSeal29BytePayloadSize(t *testing.T) {
	key := testKey()
	plaintext := []byte("The quick brown fox jumped...") // 29 bytes
	if len(plaintext) != 29 {
		t.Fatalf("test fixture is %d bytes, want 29", len(plaintext))
	}
	blob, err := Seal(key, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	// IV(16) + ciphertext body: 29 bytes pads up to 32.
	if len(blob) != blockSize+32 {
		t.Fatalf("Seal(29 bytes) length = %d, want %d", len(blob), blockSize+32)
	}
	got, err := Open(key, blob)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open recovered %q, want %q", got, plaintext)
	}
}

func TestSealUsesFreshIV(t *testing.T) {
	key := testKey()
	a, err := Seal(key, []byte("same plaintext"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Seal(key, []byte("same plaintext"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two Seal calls on the same plaintext produced identical blobs")
	}
}

func TestCorruptedCiphertextNeverSilentlyMatches(t *testing.T) {
	key := testKey()
	plaintext := []byte("The quick brown fox jumps over")
	blob, err := Seal(key, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	corrupt := append([]byte{}, blob...)
	corrupt[len(corrupt)-1] ^= 0x01

	got, err := Open(key, corrupt)
	if err == nil && bytes.Equal(got, plaintext) {
		t.Fatal("corrupted ciphertext silently decrypted to the original plaintext")
	}
}

func TestOpenRejectsBadPadding(t *testing.T) {
	key := testKey()
	blob := make([]byte, 2*blockSize)
	// IV is all zero; under this fixed key the body decrypts to a
	// block that does not end in valid PKCS#7 padding.
	if _, err := Open(key, blob); err == nil {
		t.Fatal("expected padding error on all-zero ciphertext body")
	}
}

func TestOpenRejectsTruncatedBlob(t *testing.T) {
	key := testKey()
	if _, err := Open(key, make([]byte, blockSize-1)); err == nil {
		t.Fatal("expected error for blob shorter than one block")
	}
}
