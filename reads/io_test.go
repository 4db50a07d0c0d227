package reads

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFastq = `@r1
ACGTN
+
!+5?I
@r2
TTGCA
+r2
IIIII
`

func writeFile(t *testing.T, name string, data []byte, gz bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	if gz {
		w := gzip.NewWriter(f)
		_, err = w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		return path
	}
	_, err = f.Write(data)
	require.NoError(t, err)
	return path
}

func checkTestFastq(t *testing.T, records []Read) {
	t.Helper()
	require.Len(t, records, 2)
	assert.Equal(t, "r1", records[0].Name)
	assert.Equal(t, "ACGTN", string(records[0].Seq))
	assert.Equal(t, []byte{0, 10, 20, 30, 40}, records[0].Qual)
	assert.Equal(t, "TTGCA", string(records[1].Seq))
	assert.Equal(t, []byte{40, 40, 40, 40, 40}, records[1].Qual)
	assert.Equal(t, 5, records[1].Len())
}

func TestFastqSource(t *testing.T) {
	records, err := ReadAll(NewFastqSource(strings.NewReader(testFastq)))
	require.NoError(t, err)
	checkTestFastq(t, records)
}

func TestOpenFastq(t *testing.T) {
	for _, gz := range []bool{false, true} {
		name := "reads.fastq"
		if gz {
			name += ".gz"
		}
		src, err := Open(writeFile(t, name, []byte(testFastq), gz))
		require.NoError(t, err)
		records, err := ReadAll(src)
		require.NoError(t, err)
		checkTestFastq(t, records)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "none.fq"))
	assert.True(t, os.IsNotExist(err))
}

const testSam = "@HD\tVN:1.6\tSO:unsorted\n" +
	"r1\t4\t*\t0\t0\t*\t*\t0\t0\tACGT\tIIII\n" +
	"r2\t20\t*\t0\t0\t*\t*\t0\t0\tAACG\t!#%'\n" +
	"r3\t260\t*\t0\t0\t*\t*\t0\t0\tGGGG\tIIII\n"

func TestOpenSam(t *testing.T) {
	src, err := Open(writeFile(t, "reads.sam", []byte(testSam), false))
	require.NoError(t, err)
	records, err := ReadAll(src)
	require.NoError(t, err)

	// r3 is a secondary alignment.
	require.Len(t, records, 2)
	assert.Equal(t, "ACGT", string(records[0].Seq))
	assert.Equal(t, []byte{40, 40, 40, 40}, records[0].Qual)
	assert.Equal(t, "CGTT", string(records[1].Seq))
	assert.Equal(t, []byte{6, 4, 2, 0}, records[1].Qual)
}

func TestSamWithoutQuality(t *testing.T) {
	data := "@HD\tVN:1.6\n" + "r1\t4\t*\t0\t0\t*\t*\t0\t0\tACGT\t*\n"
	src, err := NewSource(SAM, strings.NewReader(data))
	require.NoError(t, err)
	_, err = ReadAll(src)
	assert.True(t, errors.Is(err, ErrNoQuality))
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FASTQ, FormatOf("a.fastq.gz"))
	assert.Equal(t, FASTQ, FormatOf("a.fq"))
	assert.Equal(t, SAM, FormatOf("a.SAM"))
	assert.Equal(t, SAM, FormatOf("a.sam.gz"))
	assert.Equal(t, BAM, FormatOf("dir/a.bam"))
	assert.Equal(t, "bam", BAM.String())
}

func TestSlice(t *testing.T) {
	in := []Read{{Name: "a", Seq: []byte("A"), Qual: []byte{1}}}
	out, err := ReadAll(Slice(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = ReadAll(Slice(nil))
	require.NoError(t, err)
	assert.Empty(t, out)
}
