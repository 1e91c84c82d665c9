package gds

// Version is the library version, also reported by the gdsgen CLI.
const Version = "0.2.0"
