package schemes

// Official is a sorted list of IANA-registered URI schemes, normally kept
// current by a generator pulling https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml.
// This is the hand-seeded subset shipped with this module.
var Official = []string{
	`aaa`, `aaas`, `about`, `acap`, `acct`, `cap`, `cid`, `coap`, `coaps`,
	`crid`, `data`, `dav`, `dict`, `dns`, `example`, `fax`, `feed`, `file`,
	`filesystem`, `ftp`, `geo`, `go`, `gopher`, `h323`, `http`, `https`,
	`iax`, `icap`, `im`, `imap`, `info`, `ipp`, `ipps`, `iris`, `jabber`,
	`ldap`, `ldaps`, `magnet`, `mailto`, `mid`, `mms`, `ms-search`, `msrp`,
	`msrps`, `mtqp`, `mupdate`, `news`, `nfs`, `ni`, `nih`, `nntp`, `opaquelocktoken`,
	`pop`, `pres`, `reload`, `rtsp`, `rtsps`, `rtspu`, `service`, `session`,
	`shttp`, `sieve`, `sip`, `sips`, `sms`, `snmp`, `soap.beep`, `soap.beeps`,
	`ssh`, `stun`, `stuns`, `tag`, `tel`, `telnet`, `tftp`, `thismessage`,
	`tip`, `tn3270`, `turn`, `turns`, `tv`, `urn`, `vemmi`, `vnc`, `ws`,
	`wss`, `xcon`, `xcon-userid`, `xmlrpc.beep`, `xmlrpc.beeps`, `xmpp`,
	`z39.50r`, `z39.50s`,
}
