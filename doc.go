// Package hdsecrets implements the hierarchical-deterministic key, mnemonic,
// and child-entropy machinery behind BIP-32, BIP-39, and BIP-85.
//
// The three specifications share one entity, the 78-byte extended key
// (package bip32), one address space, the derivation path, and one failure
// model: a cryptographically invalid child is retried at the next index.
// bip39 turns entropy into checksummed word lists and stretches them into
// the seed bip32 roots its tree from. bip85 treats any node of that tree as
// the root of a second, application-specific derivation and formats the
// result as a mnemonic, a WIF key, an extended key, hex, a password, dice
// rolls, or raw deterministic random bytes.
//
// Nothing in this module touches the network, signs a transaction, or
// formats an address; callers supply bytes and paths and get bytes and
// strings back.
package hdsecrets
