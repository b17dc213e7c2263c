package rsapss_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/vaultsandbox/rsapss"
)

func Example() {
	key, err := rsapss.GenerateKey(1024)
	if err != nil {
		log.Fatal(err)
	}

	msg := []byte("hello, world")
	sig, err := rsapss.Sign(key, msg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("signature bytes:", len(sig))
	fmt.Println("valid:", rsapss.Verify(&key.PublicKey, msg, sig) == nil)
	// Output:
	// signature bytes: 128
	// valid: true
}

func ExampleVerifier_Verify() {
	key, err := rsapss.GenerateKey(1024)
	if err != nil {
		log.Fatal(err)
	}
	signer, err := rsapss.NewSigner(key, rsapss.WithHash(rsapss.SHA3_256))
	if err != nil {
		log.Fatal(err)
	}
	verifier, err := rsapss.NewVerifier(signer.Public(), rsapss.WithHash(rsapss.SHA3_256))
	if err != nil {
		log.Fatal(err)
	}

	sig, err := signer.Sign([]byte("original"))
	if err != nil {
		log.Fatal(err)
	}

	err = verifier.Verify([]byte("tampered"), sig)
	fmt.Println(errors.Is(err, rsapss.ErrHashMismatch))
	// Output: true
}

func ExampleLookupHash() {
	h, err := rsapss.LookupHash("blake2b_512")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(h.Name(), h.Size(), rsapss.MinKeyBitsFor(h))
	// Output: BLAKE2b-512 64 1034
}
