// Package rsapss implements RSASSA-PSS signatures: key generation, signing
// and verification with a single fixed profile.
//
// The profile is the one recommended by PKCS #1 v2.2: the salt is as long as
// the digest, MGF1 uses the same hash as the message digest, and the trailer
// byte is 0xbc. The hash is chosen once per Signer or Verifier with
// [WithHash]; SHA-256 is the default.
//
// Basic usage:
//
//	key, err := rsapss.GenerateKey(2048)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := rsapss.Sign(key, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := rsapss.Verify(&key.PublicKey, []byte("hello"), sig); err != nil {
//	    fmt.Println("invalid:", err)
//	}
//
// Every failure wraps exactly one sentinel, so callers can branch with
// errors.Is:
//
//	switch {
//	case errors.Is(err, rsapss.ErrHashMismatch):
//	    // signature does not match the message
//	case errors.Is(err, rsapss.ErrEncodingInconsistent), errors.Is(err, rsapss.ErrInvalidPadding):
//	    // structurally broken signature or wrong key
//	}
//
// Keys can be stored as JSON with [PrivateKey.Export] and restored with
// [ImportPrivateKey].
package rsapss
