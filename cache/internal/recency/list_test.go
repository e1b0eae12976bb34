package recency

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("List", func() {
	var l *List

	BeforeEach(func() {
		l = New()
	})

	It("should start empty", func() {
		Expect(l.Empty()).To(BeTrue())
		Expect(l.Len()).To(Equal(0))

		_, ok := l.PeekFront()
		Expect(ok).To(BeFalse())

		_, ok = l.PeekBack()
		Expect(ok).To(BeFalse())

		_, ok = l.RemoveBack()
		Expect(ok).To(BeFalse())
	})

	It("should keep the most recent entry at the front", func() {
		l.PushFront(1)
		l.PushFront(2)
		l.PushFront(3)

		front, ok := l.PeekFront()
		Expect(ok).To(BeTrue())
		Expect(front).To(Equal(3))

		back, ok := l.PeekBack()
		Expect(ok).To(BeTrue())
		Expect(back).To(Equal(1))
		Expect(l.Len()).To(Equal(3))
	})

	It("should move an entry to the front", func() {
		h1 := l.PushFront(1)
		l.PushFront(2)
		l.PushFront(3)

		l.MoveToFront(h1)

		front, _ := l.PeekFront()
		Expect(front).To(Equal(1))

		back, _ := l.PeekBack()
		Expect(back).To(Equal(2))
		Expect(l.Len()).To(Equal(3))
	})

	It("should treat moving the front entry as a no-op", func() {
		l.PushFront(1)
		h2 := l.PushFront(2)

		l.MoveToFront(h2)

		front, _ := l.PeekFront()
		Expect(front).To(Equal(2))
		Expect(l.Len()).To(Equal(2))
	})

	It("should move the back entry to the front", func() {
		h1 := l.PushFront(1)
		l.PushFront(2)

		l.MoveToFront(h1)

		front, _ := l.PeekFront()
		Expect(front).To(Equal(1))

		back, _ := l.PeekBack()
		Expect(back).To(Equal(2))
	})

	It("should remove from the middle", func() {
		l.PushFront(1)
		h2 := l.PushFront(2)
		l.PushFront(3)

		l.Remove(h2)

		Expect(l.Len()).To(Equal(2))

		back, _ := l.RemoveBack()
		Expect(back).To(Equal(1))

		back, _ = l.RemoveBack()
		Expect(back).To(Equal(3))
		Expect(l.Empty()).To(BeTrue())
	})

	It("should remove the only entry", func() {
		h := l.PushFront(7)

		l.Remove(h)

		Expect(l.Empty()).To(BeTrue())
		_, ok := l.PeekFront()
		Expect(ok).To(BeFalse())
	})

	It("should remove from the back", func() {
		l.PushFront(1)
		l.PushFront(2)

		v, ok := l.RemoveBack()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1))

		back, _ := l.PeekBack()
		Expect(back).To(Equal(2))
	})

	It("should reuse freed slots", func() {
		h1 := l.PushFront(1)
		l.Remove(h1)

		h2 := l.PushFront(2)
		Expect(h2).To(Equal(h1))

		front, _ := l.PeekFront()
		Expect(front).To(Equal(2))
	})

	It("should reset", func() {
		l.PushFront(1)
		l.PushFront(2)

		l.Reset()

		Expect(l.Empty()).To(BeTrue())
		_, ok := l.PeekBack()
		Expect(ok).To(BeFalse())
	})

	It("should panic when a dead handle is used", func() {
		h := l.PushFront(1)
		l.Remove(h)

		Expect(func() { l.MoveToFront(h) }).To(Panic())
		Expect(func() { l.Remove(h) }).To(Panic())
	})
})
