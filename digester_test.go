package searchkey

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSecret returns a deterministic 32-byte secret for tests.
func testSecret(id string) []byte {
	secret := make([]byte, 32)
	copy(secret, id)
	for i := len(id); i < 32; i++ {
		secret[i] = byte(i)
	}
	return secret
}

func newTestDigester(t *testing.T, opts ...Option) *Digester {
	t.Helper()
	if len(opts) == 0 {
		opts = []Option{WithSecret("v1", testSecret("v1"))}
	}
	d, err := New(opts...)
	require.NoError(t, err)
	return d
}

func TestNew_NoSecrets(t *testing.T) {
	_, err := New()
	require.ErrorIs(t, err, ErrNoSecrets)
}

func TestNew_InvalidSecretSize(t *testing.T) {
	_, err := New(WithSecret("v1", make([]byte, 16)))
	require.ErrorIs(t, err, ErrInvalidSecretSize)
}

func TestNew_InvalidSecretID(t *testing.T) {
	_, err := New(WithSecret("", testSecret("x")))
	require.ErrorIs(t, err, ErrInvalidSecretID)

	long := string(bytes.Repeat([]byte("a"), 256))
	_, err = New(WithSecret(long, testSecret("x")))
	require.ErrorIs(t, err, ErrInvalidSecretID)
}

func TestDigest_Deterministic(t *testing.T) {
	d := newTestDigester(t)

	a := d.Digest("Crème Brûlée")
	b := d.Digest("creme brulee")
	c := d.Digest("CREMEBRULEE")

	require.Len(t, a, 32) // HMAC-SHA256
	require.Equal(t, a, b)
	require.Equal(t, a, c)
	require.NotEqual(t, a, d.Digest("creme brule"))
}

func TestDigest_EmptyKeyIsNil(t *testing.T) {
	d := newTestDigester(t)

	require.Nil(t, d.Digest(""))
	require.Nil(t, d.Digest("   "))
	require.Nil(t, d.Digest("!?،"))
	require.Nil(t, d.DigestPtr(nil))
	require.Nil(t, d.Digests(""))
}

func TestDigestPtr(t *testing.T) {
	d := newTestDigester(t)
	s := "Mahmoud"
	require.Equal(t, d.Digest("mahmoud"), d.DigestPtr(&s))
}

func TestDigestKey(t *testing.T) {
	d := newTestDigester(t)
	require.Equal(t, d.Digest("Crème"), d.DigestKey(Normalize("Crème")))
	require.Nil(t, d.DigestKey(Key{}))
}

func TestDigest_DifferentSecrets(t *testing.T) {
	d1 := newTestDigester(t, WithSecret("v1", testSecret("v1")))
	d2 := newTestDigester(t, WithSecret("v1", testSecret("v2")))
	require.NotEqual(t, d1.Digest("alice"), d2.Digest("alice"))
}

func TestDigest_UsesNormalizer(t *testing.T) {
	plain := newTestDigester(t)
	arabic := newTestDigester(t,
		WithSecret("v1", testSecret("v1")),
		WithNormalizer(NormalizeSearchArabic),
	)

	require.NotEqual(t, plain.Digest("مدرسة"), plain.Digest("مدرسه"))
	require.Equal(t, arabic.Digest("مدرسة"), arabic.Digest("مدرسه"))
}

func TestDigestWithSecret(t *testing.T) {
	d := newTestDigester(t,
		WithSecret("v1", testSecret("v1")),
		WithSecret("v2", testSecret("v2")),
	)

	v2, err := d.DigestWithSecret("v2", "alice")
	require.NoError(t, err)
	require.NotEqual(t, d.Digest("alice"), v2)

	_, err = d.DigestWithSecret("v3", "alice")
	require.ErrorIs(t, err, ErrSecretNotFound)
}

func TestDigests_AllSecrets(t *testing.T) {
	d := newTestDigester(t,
		WithSecret("v1", testSecret("v1")),
		WithSecret("v2", testSecret("v2")),
	)

	all := d.Digests("alice")
	require.Len(t, all, 2)
	require.Equal(t, d.Digest("alice"), all["v1"])
	v2, _ := d.DigestWithSecret("v2", "alice")
	require.Equal(t, v2, all["v2"])
}

func TestActiveSecretIDs_Sorted(t *testing.T) {
	d := newTestDigester(t,
		WithSecret("v3", testSecret("v3")),
		WithSecret("v1", testSecret("v1")),
		WithSecret("v2", testSecret("v2")),
	)
	require.Equal(t, []string{"v1", "v2", "v3"}, d.ActiveSecretIDs())
	require.Equal(t, "v3", d.DefaultSecretID())
}

func TestClose(t *testing.T) {
	d := newTestDigester(t)
	d.Close()

	require.Panics(t, func() { d.Digest("alice") })
	require.Panics(t, func() { d.DigestKey(Normalize("alice")) })
	require.Panics(t, func() { d.Digests("alice") })

	_, err := d.DigestWithSecret("v1", "alice")
	require.ErrorIs(t, err, ErrDigesterClosed)
}

func TestNew_CallerMayZeroSecret(t *testing.T) {
	secret := testSecret("v1")
	reference := newTestDigester(t, WithSecret("v1", testSecret("v1")))

	opt := WithSecret("v1", secret)
	clear(secret)
	d := newTestDigester(t, opt)

	require.Equal(t, reference.Digest("alice"), d.Digest("alice"))
}

func TestNew_OptionReused(t *testing.T) {
	opt := WithSecret("v1", testSecret("v1"))

	d1 := newTestDigester(t, opt)
	d2 := newTestDigester(t, opt)
	require.Equal(t, d1.Digest("alice"), d2.Digest("alice"))

	zero := newTestDigester(t, WithSecret("v1", make([]byte, 32)))
	require.NotEqual(t, zero.Digest("alice"), d2.Digest("alice"))
}

func TestNew_OptionsReusedAcrossRotation(t *testing.T) {
	opts := []Option{
		WithSecret("v1", testSecret("v1")),
		WithSecret("v2", testSecret("v2")),
	}

	first, err := New(opts...)
	require.NoError(t, err)
	second, err := New(opts...)
	require.NoError(t, err)

	for _, id := range []string{"v1", "v2"} {
		a, err := first.DigestWithSecret(id, "alice")
		require.NoError(t, err)
		b, err := second.DigestWithSecret(id, "alice")
		require.NoError(t, err)
		require.Equal(t, a, b, id)
	}
}

func TestDigest_Concurrent(t *testing.T) {
	d := newTestDigester(t)
	want := d.Digest("Crème Brûlée")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !bytes.Equal(want, d.Digest("CREME brulee")) {
					t.Error("digest changed under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}
