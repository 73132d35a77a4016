// Package protocol implements the colmi ring's BLE command/notification
// wire protocol.
//
// Every command and every UART reply is a 16-byte frame: an opcode byte,
// up to 14 bytes of payload, and a trailing checksum byte (the unsigned
// sum of the first 15 bytes). V2 notifications may be shorter: the last
// frame of a big-data transaction carries only the bytes that remain. Outbound frames route to one of two GATT command
// paths — the UART service or the "V2" service — depending on opcode; see
// Route.
//
// Replies use three different framing disciplines depending on family:
//
//   - fixed-shape: heart rate and stress readings arrive as a length
//     frame followed by a fixed run of data frames (heartrate.go, stress.go)
//   - count-terminated: sport-detail records carry their own
//     ordinal/total pair and the transaction ends when ordinal == total-1
//     (sportdetail.go)
//   - length-prefixed "big data": sleep and oxygen payloads arrive as a
//     declared byte length followed by as many V2-channel frames as it
//     takes to fill it (bigdata.go, sleep.go, oxygen.go)
//
// Parser folds a stream of Frames into CommandReply values, holding
// exactly the partial state each family needs between calls. Stream
// wraps a Parser around a pair of transport frame channels for callers
// that want a single merged channel of replies instead of driving the
// parser by hand.
package protocol
