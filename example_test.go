package searchkey_test

import (
	"fmt"

	"github.com/ai8future/searchkey"
)

func ExampleNormalize() {
	fmt.Println(searchkey.Normalize("  Crème Brûlée ").String())
	fmt.Println(searchkey.Normalize("This ١٢٨").String())
	// Output:
	// cremebrulee
	// this128
}

func ExampleNormalizePhrase() {
	fmt.Println(searchkey.NormalizePhrase("  Crème   Brûlée ").String())
	// Output: creme brulee
}

func ExampleFoldArabic() {
	fmt.Println(searchkey.FoldArabic(searchkey.Normalize("أحمد")))
	fmt.Println(searchkey.FoldArabic(searchkey.NormalizePhrase(" بِسْمِ اللَّهِ الرَّحْمَنِ الرَّحِيمِ ")))
	// Output:
	// احمد
	// بسم الله الرحمن الرحيم
}

func ExampleToInvariantDigits() {
	fmt.Println(searchkey.ToInvariantDigits("This is numeral ١,٢٨"))
	// Output: This is numeral 1,28
}

func ExamplePermaLinkWithID() {
	slug, err := searchkey.PermaLinkWithID("project using C++", "F13D1B0F57244688")
	if err != nil {
		panic(err)
	}
	fmt.Println(slug)
	// Output: Project-Using-C-Plus-Plus-F13D1B0F57
}

func ExampleDigester_SearchCondition() {
	// Load a 32-byte secret from secure storage in production.
	secret := []byte("01234567890123456789012345678901")

	d, err := searchkey.New(
		searchkey.WithSecret("v1", secret),
		searchkey.WithNormalizer(searchkey.NormalizeSearchArabic),
	)
	if err != nil {
		panic(err)
	}
	defer d.Close()

	// Rows written with different spellings share one digest.
	fmt.Println(string(d.Digest("مدرسة")) == string(d.Digest("مدرسه")))

	cond := d.SearchCondition("name", "مدرسة", 1)
	fmt.Println("SELECT id FROM schools WHERE " + cond.SQL)
	// Output:
	// true
	// SELECT id FROM schools WHERE (secret_id = $1 AND name_digest = $2)
}

func ExampleDigester_Rotate() {
	oldSecret := []byte("old-key-must-be-32-bytes-long!!!")
	newSecret := []byte("new-key-must-be-32-bytes-long!!!")

	d, _ := searchkey.New(
		searchkey.WithSecret("v1", oldSecret),
		searchkey.WithSecret("v2", newSecret),
		searchkey.WithDefaultSecretID("v2"),
	)

	if row, ok := d.Rotate("v1", "Crème Brûlée"); ok {
		fmt.Println("rotated to", row.SecretID)
	}
	// Output: rotated to v2
}

func ExampleIndex() {
	x := searchkey.NewIndex(searchkey.NormalizeSearchArabic)
	x.Add("a", "Crème Brûlée")
	x.Add("b", "Crème caramel")
	x.Add("c", "مدرسة البنات")

	fmt.Println(x.Lookup("creme"))
	fmt.Println(x.Lookup("CRÈME BRULEE"))
	fmt.Println(x.Lookup("مدرسه"))
	// Output:
	// [a b]
	// [a]
	// [c]
}

func ExampleParseProfile() {
	p, err := searchkey.ParseProfile([]byte("mode: phrase\narabic: true\n"))
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Normalizer()("إبراهيم  خليل"))
	// Output: ابراهيم خليل
}
