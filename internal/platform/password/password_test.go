package password

import (
	"strings"
	"testing"
)

// TestHash_FreshSaltPerCall は同じ平文でも呼び出しごとに異なるハッシュが生成され、
// 双方が元の平文に対して検証できることを確認します。
func TestHash_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	const plain = "correct horse battery staple"

	first, err := Hash(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Hash(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("two hash calls produced identical blobs; salt is not fresh")
	}
	if !Verify(plain, first) {
		t.Error("first blob does not verify against the plaintext")
	}
	if !Verify(plain, second) {
		t.Error("second blob does not verify against the plaintext")
	}
}

// TestHash_NeverStoresPlaintext はハッシュに平文が含まれないことを確認します。
func TestHash_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	const plain = "password123"

	blob, err := Hash(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(blob, plain) {
		t.Error("hash blob contains the plaintext")
	}
}

// TestVerify_FailureModes は不一致・不正な保存ハッシュのいずれもfalseになる
// （エラーにならない）ことを確認します。
func TestVerify_FailureModes(t *testing.T) {
	t.Parallel()

	valid, err := Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		plain    string
		encoded  string
		expected bool
	}{
		{"correct password", "password123", valid, true},
		{"wrong password", "password124", valid, false},
		{"empty password", "", valid, false},
		{"malformed stored hash", "password123", "not-a-bcrypt-hash", false},
		{"empty stored hash", "password123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verify(tt.plain, tt.encoded); got != tt.expected {
				t.Errorf("Verify() = %v, want %v", got, tt.expected)
			}
		})
	}
}
