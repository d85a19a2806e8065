// Package document holds the tenant-scoped attachments of the system:
// uploaded documents and messages exchanged between users. Both can be linked
// to a task and are deleted together with it.
package document
