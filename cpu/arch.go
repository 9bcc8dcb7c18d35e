package cpu

const (
	ADDRESS_WIDTH_BITS  = 11                            // Width of a memory address.
	MEMORY_SIZE         = 1 << ADDRESS_WIDTH_BITS       // Number of memory words.
	ADDRESS_MASK        = MEMORY_SIZE - 1               // Mask of a memory address.
	CODE_WIDTH_BYTES    = 4                             // Size of an instruction word.
	OPCODE_WIDTH_BITS   = 4                             // Width of the opcode field.
	OPERAND_WIDTH_BITS  = 28                            // Width of the operand field.
	OPERAND_MASK        = (1 << OPERAND_WIDTH_BITS) - 1 // Mask of the operand field.
	CONSTANT_WIDTH_BITS = 27                            // Width of a load constant operand.
	CONSTANT_MASK       = (1 << CONSTANT_WIDTH_BITS) - 1
)
