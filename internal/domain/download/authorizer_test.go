package download

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := MintToken()
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	if len(token) != 32 {
		t.Fatalf("token length = %d, want 32 hex chars", len(token))
	}

	if !CheckToken(token, token) {
		t.Fatal("CheckToken rejected its own token")
	}
	if CheckToken(token, "wrong") {
		t.Fatal("CheckToken accepted a wrong token")
	}
	if CheckToken("", token) {
		t.Fatal("CheckToken accepted a token with nothing stored")
	}
	if CheckToken(token, "") {
		t.Fatal("CheckToken accepted an empty presentation")
	}
}

func TestMintTokenIsFreshEachTime(t *testing.T) {
	a, err := MintToken()
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	b, err := MintToken()
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	if a == b {
		t.Fatal("two minted tokens are identical")
	}
}
