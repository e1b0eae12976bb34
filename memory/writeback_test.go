package memory

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WritebackSink", func() {
	var (
		storage *Storage
		sink    *WritebackSink
	)

	BeforeEach(func() {
		storage = NewStorage(4096)
		sink = NewWritebackSink(storage, 64, nil)
	})

	It("should land write-backs in the storage", func() {
		sink.OnDirtyEviction(0x100, 0x4)

		data, err := storage.Read(0x100, 8)
		Expect(err).ToNot(HaveOccurred())
		Expect(binary.LittleEndian.Uint64(data)).To(Equal(uint64(0x4)))
		Expect(sink.Writebacks()).To(Equal(uint64(1)))
	})

	It("should count write-backs that miss the storage", func() {
		sink.OnDirtyEviction(1 << 40, 0x4)

		Expect(sink.Writebacks()).To(Equal(uint64(1)))
	})
})
