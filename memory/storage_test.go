package memory

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Storage", func() {
	It("should read and write within a single unit", func() {
		storage := NewStorage(4096)

		Expect(storage.Write(0, []byte{1, 2, 3, 4})).To(Succeed())

		data, err := storage.Read(0, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal([]byte{1, 2}))

		data, err = storage.Read(1, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal([]byte{2, 3}))
	})

	It("should read and write across units", func() {
		storage := NewStorage(8192)

		Expect(storage.Write(4094, []byte{1, 2, 3, 4})).To(Succeed())

		data, err := storage.Read(4094, 4)
		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal([]byte{1, 2, 3, 4}))
	})

	It("should read zeros from untouched memory", func() {
		storage := NewStorage(4096)

		data, err := storage.Read(100, 4)
		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal([]byte{0, 0, 0, 0}))
	})

	It("should reject accesses beyond the capacity", func() {
		storage := NewStorage(4096)

		err := storage.Write(4095, []byte{1, 2})
		Expect(err).To(MatchError(ErrCapacity))

		_, err = storage.Read(4095, 2)
		Expect(err).To(MatchError(ErrCapacity))
	})
})
