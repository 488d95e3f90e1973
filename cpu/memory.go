package cpu

// MemoryBlock is an addressable byte store mapped into the CPU's address
// space. Offsets are relative to the block's base address.
type MemoryBlock interface {
	Read(offset uint16) uint8
	Write(offset uint16, value uint8)
	Size() uint16
}

// Ram is a zero initialized, read-write memory block.
type Ram struct {
	Data []uint8
}

var _ MemoryBlock = (*Ram)(nil)

// NewRam returns a RAM block of size bytes.
func NewRam(size uint16) *Ram {
	return &Ram{Data: make([]uint8, size)}
}

func (ram *Ram) Read(offset uint16) uint8 {
	return ram.Data[offset]
}

func (ram *Ram) Write(offset uint16, value uint8) {
	ram.Data[offset] = value
}

func (ram *Ram) Size() uint16 {
	return uint16(len(ram.Data))
}

// Mapping is a memory block placed at a base address.
type Mapping struct {
	Base  uint16
	Block MemoryBlock
}

// Contains is true if the mapping covers address.
func (mp Mapping) Contains(address uint16) bool {
	return address >= mp.Base && int(address) <= mp.last()
}

// last returns the highest covered address.
func (mp Mapping) last() int {
	return int(mp.Base) + int(mp.Block.Size()) - 1
}

// Overlaps is true if the two mappings share any address.
func (mp Mapping) Overlaps(other Mapping) bool {
	return int(mp.Base) <= other.last() && int(other.Base) <= mp.last()
}
