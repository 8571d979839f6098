/******************************************************************************
 *
 *  Description :
 *
 *    Authorization rules. All checks are pure functions over already-loaded
 *    entities so they can be applied uniformly by the HTTP surface and the
 *    components, and tested without a database.
 *
 *****************************************************************************/

package main

import (
	t "github.com/sycs/chat/server/store/types"
)

// canMutateThread reports whether the principal may update or delete the
// thread. Only the creator may.
func canMutateThread(principal t.Uid, thread *t.Thread) bool {
	return thread.CreatorId == principal
}

// canPinMessage reports whether the principal may pin or unpin a message in
// the thread. Pinning follows thread ownership.
func canPinMessage(principal t.Uid, thread *t.Thread) bool {
	return thread.CreatorId == principal
}

// canEditMessage reports whether the principal may edit a thread message.
// Editing is reserved for the author.
func canEditMessage(principal t.Uid, msg *t.Message) bool {
	return msg.SenderId == principal
}

// canDeleteThreadMessage reports whether the principal may delete a message
// from a group thread. The author may delete their own message only when the
// thread permits member deletions. The thread creator may always delete.
func canDeleteThreadMessage(principal t.Uid, thread *t.Thread, msg *t.Message) bool {
	if thread.CreatorId == principal {
		return true
	}
	return msg.SenderId == principal && thread.Flags.AllowMsgDelete
}

// canEditDMMessage reports whether the principal may edit a DM message.
func canEditDMMessage(principal t.Uid, msg *t.DMMessage) bool {
	return msg.SenderId == principal
}

// canDeleteDMMessage reports whether the principal may delete a DM message.
// Unlike group threads there is no owner override: only the author may.
func canDeleteDMMessage(principal t.Uid, msg *t.DMMessage) bool {
	return msg.SenderId == principal
}

// canAttach reports whether the principal may attach a file to a message in
// the thread.
func canAttach(thread *t.Thread) bool {
	return thread.Flags.AllowAttachments
}

// isParticipant reports whether the uid is one of the channel participants.
func isParticipant(uid t.Uid, participants []t.DMParticipant) bool {
	for _, p := range participants {
		if p.UserId == uid {
			return true
		}
	}
	return false
}

// otherParticipant returns the participant other than uid, or ZeroUid if uid
// is not a participant of a two-sided channel.
func otherParticipant(uid t.Uid, participants []t.DMParticipant) t.Uid {
	if len(participants) != 2 || !isParticipant(uid, participants) {
		return t.ZeroUid
	}
	if participants[0].UserId == uid {
		return participants[1].UserId
	}
	return participants[0].UserId
}
