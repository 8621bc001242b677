// Package symbols declares the fixed vocabulary the chat and alerts UI switches on.
//
// There are four independent enumerations:
//   - PageName: top-level views (CHATS, CHATS_OPEN, ALERTS, ALERTS_OPEN)
//   - IconKind: avatar/glyph styles (USER, GROUP, CLASS, ALERT)
//   - ModalID: active modal dialog (NEW_CHAT)
//   - NewChatModalStep: step within the new chat modal (DIRECT, GROUP)
//
// Every member's value is the literal string of its own name, so values persisted
// or sent between processes stay stable. Each enumeration is its own named type;
// assigning an IconKind to a PageName does not compile.
//
// The member lists are fixed at compile time. PageNames, IconKinds, Modals and
// NewChatModalSteps return a fresh copy on every call.
package symbols
