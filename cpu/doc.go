// Package cpu implements the vm16 virtual processor.
//
// The CPU has twelve 16-bit registers (ip, acc, r1-r8, sp, fp) held in a small
// big-endian register buffer, and executes byte-coded instructions out of a
// flat memory it shares with its data and its call stack.
//
// Registers are reached by name through GetRegister/SetRegister, and by raw
// index from instruction operands: an operand byte is reduced modulo the
// register count, so every selector names some register.
//
// The stack grows down from the top of memory. CAL_LIT and CAL_REG save
// r1-r8, the return address and the frame size on the stack, then open a new
// frame at fp; RET unwinds it, including the arguments the caller pushed
// before the call (arguments first, then their count).
package cpu
