package etch_test

import (
	"encoding/json"
	"fmt"

	"github.com/belfry/go-anvil/etch"
)

func Example() {
	b, err := etch.NewPacketBuilder(etch.PacketOptions{
		Name:         "Packet Name",
		EmailSubject: "Please sign these forms",
	})
	if err != nil {
		panic(err)
	}

	if err := b.AddSigner(&etch.Signer{
		ID:    "signer-jackie",
		Name:  "Jackie",
		Email: "jackie@example.com",
		Fields: []etch.FieldAssignment{
			{FileID: "fileAlias", FieldID: "signOne"},
		},
	}); err != nil {
		panic(err)
	}

	b.AddFile(etch.NewCastReference("fileAlias", "CAST_EID_GOES_HERE"))
	b.AddPrefill("fileAlias", map[string]any{"aTextFieldId": "This is pre-filled."})

	out, _ := json.MarshalIndent(b.Payload(), "", "  ")
	fmt.Println(string(out))
	// Output:
	// {
	//   "name": "Packet Name",
	//   "isDraft": false,
	//   "isTest": true,
	//   "signatureEmailSubject": "Please sign these forms",
	//   "signers": [
	//     {
	//       "id": "signer-jackie",
	//       "name": "Jackie",
	//       "email": "jackie@example.com",
	//       "fields": [
	//         {
	//           "fileId": "fileAlias",
	//           "fieldId": "signOne"
	//         }
	//       ],
	//       "signerType": "email"
	//     }
	//   ],
	//   "files": [
	//     {
	//       "id": "fileAlias",
	//       "castEid": "CAST_EID_GOES_HERE"
	//     }
	//   ],
	//   "data": {
	//     "payloads": {
	//       "fileAlias": {
	//         "data": {
	//           "aTextFieldId": "This is pre-filled."
	//         }
	//       }
	//     }
	//   }
	// }
}
