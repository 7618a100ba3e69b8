package bst

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/g-m-twostay/bintree/Trees"
)

// Bucket counts the words of one length. A frequency tree is a BST of
// buckets ordered by Length; adding a length that exists bumps its Count.
type Bucket struct {
	Length int
	Count  uint
}

func compareBuckets(a, b Bucket) int {
	return compare(a.Length, b.Length)
}

func bump(b *Bucket) {
	b.Count++
}

// AddLength records one word of the given length and returns the root.
// Recursive.
func AddLength(root *Trees.Node[Bucket], length int) *Trees.Node[Bucket] {
	root, _ = upsert(root, Bucket{length, 1}, compareBuckets, bump)
	return root
}

// BuildFrequency reads whitespace separated words from r and counts them by
// length in characters.
func BuildFrequency(r io.Reader) (*Trees.Node[Bucket], error) {
	var root *Trees.Node[Bucket]
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if n := utf8.RuneCount(sc.Bytes()); n > 0 {
			root = AddLength(root, n)
		}
	}
	if err := sc.Err(); err != nil {
		return root, fmt.Errorf("read words: %w", err)
	}
	return root, nil
}

// BuildFrequencyFile is BuildFrequency over the named file.
func BuildFrequencyFile(path string) (*Trees.Node[Bucket], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	return BuildFrequency(f)
}

// Frequencies lists the buckets by ascending length.
func Frequencies(root *Trees.Node[Bucket]) []Bucket {
	return Trees.Collect(Trees.InOrder[Bucket], root)
}
